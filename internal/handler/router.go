package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the gin engine with all routes.
func NewRouter(
	analysis *AnalysisHandler,
	ranking *RankingHandler,
	quota *QuotaHandler,
	tracked *TrackedChannelHandler,
	health *HealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.GET("/channels/:channelId/analysis", analysis.GetChannelAnalysis)
		api.GET("/videos/ranking", ranking.GetVideoRanking)
		api.GET("/quota", quota.GetQuota)

		api.GET("/tracked-channels", tracked.ListTrackedChannels)
		api.POST("/tracked-channels", tracked.TrackChannel)
		api.DELETE("/tracked-channels/:channelId", tracked.UntrackChannel)
	}

	router.GET("/health/live", health.LivenessProbe)
	router.GET("/health/ready", health.ReadinessProbe)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
