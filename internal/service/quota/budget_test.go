package quota

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kent15/youtube-analytics-platform/internal/model"
)

func TestBudgetReserve(t *testing.T) {
	t.Run("admits reservations under the limit", func(t *testing.T) {
		b := NewBudget(100, 90)

		require.NoError(t, b.Reserve(30))
		require.NoError(t, b.Reserve(30))
		assert.Equal(t, 40, b.Remaining())
	})

	t.Run("rejection leaves counter unchanged", func(t *testing.T) {
		b := NewBudget(100, 90)
		require.NoError(t, b.Reserve(95))

		err := b.Reserve(10)
		var qerr *model.QuotaExceededError
		require.True(t, errors.As(err, &qerr))
		assert.Equal(t, 95, qerr.Used)
		assert.Equal(t, 100, qerr.Limit)
		assert.Equal(t, 5, b.Remaining())
	})

	t.Run("used units never exceed the limit", func(t *testing.T) {
		b := NewBudget(10, 9)
		for i := 0; i < 25; i++ {
			_ = b.Reserve(1)
			assert.GreaterOrEqual(t, b.Remaining(), 0)
		}
		assert.Equal(t, 0, b.Remaining())
	})

	t.Run("crossing the alert threshold still succeeds", func(t *testing.T) {
		b := NewBudget(100, 50)
		require.NoError(t, b.Reserve(60))
		assert.Equal(t, 40, b.Remaining())
	})

	t.Run("reservation exactly at the limit succeeds", func(t *testing.T) {
		b := NewBudget(100, 90)
		require.NoError(t, b.Reserve(100))
		assert.Equal(t, 0, b.Remaining())
		assert.Error(t, b.Reserve(1))
	})
}

func TestBudgetReset(t *testing.T) {
	t.Run("counter resets after the renewal instant", func(t *testing.T) {
		b := NewBudget(100, 90)

		current := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		b.now = func() time.Time { return current }
		b.resetAt = nextResetTime(current, b.location)

		require.NoError(t, b.Reserve(80))
		assert.Equal(t, 20, b.Remaining())

		// Jump past the next Pacific midnight.
		current = current.Add(24 * time.Hour)
		assert.Equal(t, 100, b.Remaining())
		require.NoError(t, b.Reserve(80))
	})

	t.Run("no reset before the renewal instant", func(t *testing.T) {
		b := NewBudget(100, 90)

		current := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
		b.now = func() time.Time { return current }
		b.resetAt = nextResetTime(current, b.location)

		require.NoError(t, b.Reserve(80))
		current = current.Add(2 * time.Hour)
		assert.Equal(t, 20, b.Remaining())
	})
}

func TestNextResetTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	t.Run("computed in the quota policy timezone", func(t *testing.T) {
		// 2025-06-15 10:00 UTC is 03:00 PDT; the next reset is midnight
		// PDT on June 16, which is 07:00 UTC.
		now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
		reset := nextResetTime(now, loc)
		assert.Equal(t, time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC), reset.UTC())
	})

	t.Run("independent of the host locale of now", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		instant := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
		assert.True(t, nextResetTime(instant, loc).Equal(nextResetTime(instant.In(tokyo), loc)))
	})

	t.Run("late UTC evening still maps to the same Pacific day", func(t *testing.T) {
		// 2025-06-15 23:30 UTC is 16:30 PDT on June 15; reset is still
		// midnight PDT on June 16.
		now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
		reset := nextResetTime(now, loc)
		assert.Equal(t, time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC), reset.UTC())
	})
}

func TestBudgetConcurrentReservations(t *testing.T) {
	b := NewBudget(1000, 999)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = b.Reserve(1)
			}
		}()
	}
	wg.Wait()

	// 500 units reserved across goroutines, no torn counter.
	assert.Equal(t, 500, 1000-b.Remaining())
}

func TestBudgetDefaults(t *testing.T) {
	b := NewBudget(0, 0)
	assert.Equal(t, 10000, b.Limit())
	assert.Equal(t, 10000, b.Remaining())
}
