// Package metrics exposes Prometheus collectors for the analytics pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotaUnitsUsed counts YouTube API quota units consumed by the process.
	QuotaUnitsUsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "youtube_quota_units_used_total",
		Help: "YouTube API quota units consumed since process start.",
	})

	// QuotaAlerts counts reservations that crossed the alert threshold.
	QuotaAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "youtube_quota_alerts_total",
		Help: "Quota reservations that crossed the alert threshold.",
	})

	// QuotaRejections counts reservations rejected because the daily budget
	// was exhausted.
	QuotaRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "youtube_quota_rejections_total",
		Help: "Quota reservations rejected due to an exhausted daily budget.",
	})

	// AnalysisCacheHits counts channel analyses served from the result cache.
	AnalysisCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_cache_hits_total",
		Help: "Channel analyses served from the result cache.",
	})

	// AnalysisCacheMisses counts channel analyses that required remote fetches.
	AnalysisCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_cache_misses_total",
		Help: "Channel analyses that missed the result cache.",
	})

	// BatchChannels counts per-channel outcomes of the daily snapshot batch.
	BatchChannels = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_batch_channels_total",
		Help: "Per-channel outcomes of the daily snapshot batch.",
	}, []string{"outcome"})
)
