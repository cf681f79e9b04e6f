package billing

import (
	"math"
	"time"
)

// DefaultRatePerHour is the rate charged per full billable hour when no
// rate is configured.
const DefaultRatePerHour = 10.0

// Charge is the billable outcome for some elapsed time.
type Charge struct {
	// Minutes is the billable duration in minutes, rounded up to the
	// quarter-hour grid.
	Minutes int
	// Duration is Minutes expressed as a time.Duration.
	Duration time.Duration
	// Cost is the amount owed at the rate the charge was computed with.
	Cost float64
}

// Bill converts elapsed time into a billable charge.
//
// Time within the last partial hour rounds up to the next quarter hour:
// (0,15] -> 15, (15,30] -> 30, (30,45] -> 45, (45,60) -> 60. A remainder
// of exactly zero stays at zero, so time not used at all is never billed.
func Bill(elapsed time.Duration, ratePerHour float64) Charge {
	totalMinutes := elapsed.Seconds() / 60
	fullHours := math.Floor(totalMinutes / 60)
	remainder := math.Mod(totalMinutes, 60)

	var rounded float64
	switch {
	case remainder == 0:
		rounded = 0
	case remainder <= 15:
		rounded = 15
	case remainder <= 30:
		rounded = 30
	case remainder <= 45:
		rounded = 45
	default:
		rounded = 60
	}

	minutes := fullHours*60 + rounded
	return Charge{
		Minutes:  int(minutes),
		Duration: time.Duration(minutes) * time.Minute,
		Cost:     minutes / 60 * ratePerHour,
	}
}
