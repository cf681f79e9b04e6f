package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echern/punch/internal/models"
)

func closedSession(id uint, arrive time.Time, d time.Duration) models.Session {
	leave := arrive.Add(d)
	return models.Session{ID: id, ArriveAt: arrive, LeaveAt: &leave}
}

func TestFilterByPeriod(t *testing.T) {
	dec := closedSession(1, time.Date(2024, 12, 15, 9, 0, 0, 0, time.Local), time.Hour)
	nov := closedSession(2, time.Date(2024, 11, 3, 14, 0, 0, 0, time.Local), time.Hour)
	lastYear := closedSession(3, time.Date(2023, 12, 24, 10, 0, 0, 0, time.Local), time.Hour)
	sessions := []models.Session{dec, nov, lastYear}

	t.Run("no period returns everything", func(t *testing.T) {
		assert.Len(t, FilterByPeriod(sessions, AllTime), 3)
	})

	t.Run("year only", func(t *testing.T) {
		filtered := FilterByPeriod(sessions, Period{Year: 2024})
		require.Len(t, filtered, 2)
		assert.Equal(t, uint(1), filtered[0].ID)
		assert.Equal(t, uint(2), filtered[1].ID)
	})

	t.Run("year and month", func(t *testing.T) {
		filtered := FilterByPeriod(sessions, Period{Year: 2024, Month: time.December})
		require.Len(t, filtered, 1)
		assert.Equal(t, uint(1), filtered[0].ID)
	})

	t.Run("empty result", func(t *testing.T) {
		assert.Empty(t, FilterByPeriod(sessions, Period{Year: 2022}))
	})
}

func TestGroupByDay(t *testing.T) {
	day1 := time.Date(2024, 12, 15, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 12, 16, 0, 0, 0, 0, time.Local)

	// Store order: newest arrival first.
	sessions := []models.Session{
		closedSession(4, day2.Add(18*time.Hour), time.Hour),
		closedSession(3, day2.Add(9*time.Hour), time.Hour),
		closedSession(2, day1.Add(20*time.Hour), time.Hour),
		closedSession(1, day1.Add(8*time.Hour), time.Hour),
	}

	groups := GroupByDay(sessions)
	require.Len(t, groups, 2)

	assert.True(t, groups[0].Day.Equal(day2), "newest day comes first")
	assert.True(t, groups[1].Day.Equal(day1))

	// Source order preserved inside each bucket.
	require.Len(t, groups[0].Sessions, 2)
	assert.Equal(t, uint(4), groups[0].Sessions[0].ID)
	assert.Equal(t, uint(3), groups[0].Sessions[1].ID)
	require.Len(t, groups[1].Sessions, 2)
	assert.Equal(t, uint(2), groups[1].Sessions[0].ID)
	assert.Equal(t, uint(1), groups[1].Sessions[1].ID)
}

func TestPeriodStatistics(t *testing.T) {
	arrive := time.Date(2024, 12, 15, 9, 0, 0, 0, time.Local)

	t.Run("empty list has no statistics", func(t *testing.T) {
		assert.Nil(t, PeriodStatistics(nil, AllTime, 10))
	})

	t.Run("open sessions contribute nothing", func(t *testing.T) {
		open := models.Session{ID: 1, ArriveAt: arrive}
		assert.Nil(t, PeriodStatistics([]models.Session{open}, AllTime, 10))
	})

	t.Run("sum is billed once at the aggregate level", func(t *testing.T) {
		sessions := []models.Session{
			closedSession(1, arrive, 20*time.Minute),
			closedSession(2, arrive.Add(2*time.Hour), 20*time.Minute),
		}

		stats := PeriodStatistics(sessions, Period{Year: 2024, Month: time.December}, 10)
		require.NotNil(t, stats)
		assert.Equal(t, 40*time.Minute, stats.Raw)
		assert.Equal(t, 45, stats.Billable.Minutes)
		assert.InDelta(t, 7.5, stats.Billable.Cost, 1e-9)
		assert.Equal(t, "monthly", stats.Label)

		// Summing the per-session charges gives a different figure; the
		// aggregate one is authoritative for a period.
		perRow1, _ := sessions[0].Cost(10)
		perRow2, _ := sessions[1].Cost(10)
		assert.InDelta(t, 10.0, perRow1+perRow2, 1e-9)
	})

	t.Run("labels follow the filter granularity", func(t *testing.T) {
		sessions := []models.Session{closedSession(1, arrive, time.Hour)}

		assert.Equal(t, "all-time", PeriodStatistics(sessions, AllTime, 10).Label)
		assert.Equal(t, "yearly", PeriodStatistics(sessions, Period{Year: 2024}, 10).Label)
		assert.Equal(t, "monthly", PeriodStatistics(sessions, Period{Year: 2024, Month: time.December}, 10).Label)
	})
}
