// Package quota tracks consumption of the daily YouTube API unit budget.
package quota

import (
	"sync"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/internal/metrics"
	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

// quotaTimezone is the timezone of YouTube's quota renewal policy. The
// daily budget resets at midnight Pacific regardless of where the process
// runs.
const quotaTimezone = "America/Los_Angeles"

// Budget admits or rejects reservations against a renewable daily unit
// budget. All state lives behind a single mutex; call volume is low enough
// that correctness beats throughput here.
type Budget struct {
	mu             sync.Mutex
	dailyLimit     int
	alertThreshold int
	usedUnits      int
	resetAt        time.Time
	location       *time.Location
	now            func() time.Time
}

// NewBudget creates a Budget with the given daily limit and alert
// threshold. Non-positive values fall back to the YouTube Data API v3
// defaults.
func NewBudget(dailyLimit, alertThreshold int) *Budget {
	if dailyLimit <= 0 {
		dailyLimit = 10000
	}
	if alertThreshold <= 0 || alertThreshold > dailyLimit {
		alertThreshold = dailyLimit * 8 / 10
	}

	loc, err := time.LoadLocation(quotaTimezone)
	if err != nil {
		// tzdata is compiled in, so this only happens on a corrupt build.
		panic("quota: load timezone: " + err.Error())
	}

	b := &Budget{
		dailyLimit:     dailyLimit,
		alertThreshold: alertThreshold,
		location:       loc,
		now:            time.Now,
	}
	b.resetAt = nextResetTime(b.now(), loc)

	return b
}

// Reserve admits units against the budget. A reservation that would exceed
// the daily limit is rejected with a QuotaExceededError and leaves the
// counter unchanged.
func (b *Budget) Reserve(units int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetIfNeeded()

	if b.usedUnits+units > b.dailyLimit {
		logger.Log.Warn("quota reservation rejected",
			zap.Int("used", b.usedUnits),
			zap.Int("requested", units),
			zap.Int("limit", b.dailyLimit),
		)
		metrics.QuotaRejections.Inc()
		return &model.QuotaExceededError{Used: b.usedUnits, Limit: b.dailyLimit}
	}

	b.usedUnits += units
	metrics.QuotaUnitsUsed.Add(float64(units))

	if b.usedUnits >= b.alertThreshold {
		logger.Log.Warn("quota alert threshold reached",
			zap.Int("used", b.usedUnits),
			zap.Int("limit", b.dailyLimit),
		)
		metrics.QuotaAlerts.Inc()
	}

	return nil
}

// Remaining returns the units left in the current budget window.
func (b *Budget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetIfNeeded()
	return b.dailyLimit - b.usedUnits
}

// Limit returns the configured daily limit.
func (b *Budget) Limit() int {
	return b.dailyLimit
}

// resetIfNeeded renews the budget once the reset instant has passed.
// Callers must hold the mutex.
func (b *Budget) resetIfNeeded() {
	now := b.now()
	if !now.Before(b.resetAt) {
		logger.Log.Info("resetting daily quota counter",
			zap.Int("used", b.usedUnits),
			zap.Time("next_reset", nextResetTime(now, b.location)),
		)
		b.usedUnits = 0
		b.resetAt = nextResetTime(now, b.location)
	}
}

// nextResetTime computes the next budget-renewal instant: the upcoming
// midnight in the quota policy timezone, independent of host locale.
func nextResetTime(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	year, month, day := local.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, 1)
}
