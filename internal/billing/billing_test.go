package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillRoundsUpToQuarterHours(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     time.Duration
		wantMinutes int
		wantCost    float64
	}{
		{"zero stays zero", 0, 0, 0},
		{"one second rounds to a quarter hour", time.Second, 15, 2.5},
		{"exactly fifteen stays fifteen", 15 * time.Minute, 15, 2.5},
		{"just past fifteen", 15*time.Minute + time.Second, 30, 5},
		{"thirty stays thirty", 30 * time.Minute, 30, 5},
		{"forty rounds to forty-five", 40 * time.Minute, 45, 7.5},
		{"fifty rounds to the full hour", 50 * time.Minute, 60, 10},
		{"exact hour stays exact", time.Hour, 60, 10},
		{"hour and a minute", 61 * time.Minute, 75, 12.5},
		{"ninety lands on a tier boundary", 90 * time.Minute, 90, 15},
		{"two hours and change", 2*time.Hour + 50*time.Minute, 180, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bill(tt.elapsed, DefaultRatePerHour)
			assert.Equal(t, tt.wantMinutes, got.Minutes)
			assert.Equal(t, time.Duration(tt.wantMinutes)*time.Minute, got.Duration)
			assert.InDelta(t, tt.wantCost, got.Cost, 1e-9)
		})
	}
}

func TestBillMinutesAlwaysOnQuarterGrid(t *testing.T) {
	for seconds := 0; seconds <= 3*3600; seconds += 97 {
		got := Bill(time.Duration(seconds)*time.Second, DefaultRatePerHour)
		assert.Zero(t, got.Minutes%15, "billable minutes for %ds must be a multiple of 15", seconds)
		assert.GreaterOrEqual(t, got.Duration, time.Duration(0))
	}
}

func TestBillUsesGivenRate(t *testing.T) {
	got := Bill(time.Hour, 42.5)
	assert.InDelta(t, 42.5, got.Cost, 1e-9)
}
