package tracker

import (
	"sort"
	"time"

	"github.com/echern/punch/internal/billing"
	"github.com/echern/punch/internal/models"
)

// Period selects a statistics granularity: the zero value is all-time,
// a year alone is yearly, year plus month is monthly. Filtering uses the
// local calendar of each session's arrive time.
type Period struct {
	Year  int
	Month time.Month
}

// AllTime is the unfiltered period.
var AllTime = Period{}

// Label names the granularity for display.
func (p Period) Label() string {
	switch {
	case p.Year == 0:
		return "all-time"
	case p.Month == 0:
		return "yearly"
	default:
		return "monthly"
	}
}

// FilterByPeriod returns the sessions whose arrive time falls in the
// period, preserving order. A zero period returns the input unfiltered.
func FilterByPeriod(sessions []models.Session, p Period) []models.Session {
	if p.Year == 0 {
		return sessions
	}

	var filtered []models.Session
	for _, s := range sessions {
		arrive := s.ArriveAt.Local()
		if arrive.Year() != p.Year {
			continue
		}
		if p.Month != 0 && arrive.Month() != p.Month {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// DayGroup holds the sessions that started on one calendar day.
type DayGroup struct {
	Day      time.Time // local midnight
	Sessions []models.Session
}

// GroupByDay buckets sessions by the local calendar day of their arrive
// time. Source order is preserved within each bucket; days come back
// newest first.
func GroupByDay(sessions []models.Session) []DayGroup {
	buckets := make(map[time.Time]int)
	var groups []DayGroup

	for _, s := range sessions {
		arrive := s.ArriveAt.Local()
		day := time.Date(arrive.Year(), arrive.Month(), arrive.Day(), 0, 0, 0, 0, arrive.Location())

		idx, ok := buckets[day]
		if !ok {
			idx = len(groups)
			buckets[day] = idx
			groups = append(groups, DayGroup{Day: day})
		}
		groups[idx].Sessions = append(groups[idx].Sessions, s)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}

// PeriodStats summarizes the billable outcome of a period.
type PeriodStats struct {
	// Raw is the summed elapsed time of closed sessions, before rounding.
	Raw time.Duration
	// Billable is the charge for Raw, rounded once at the aggregate
	// level. This is the authoritative figure for a period; it can
	// differ from the sum of per-session costs.
	Billable billing.Charge
	// Label is the period granularity ("monthly", "yearly", "all-time").
	Label string
}

// PeriodStatistics sums the durations of the given sessions (open ones
// contribute zero), applies billing once to the sum, and labels the
// result by the period's granularity. Returns nil when there is nothing
// to report.
func PeriodStatistics(sessions []models.Session, p Period, ratePerHour float64) *PeriodStats {
	var total time.Duration
	for _, s := range sessions {
		if d, ok := s.Duration(); ok {
			total += d
		}
	}
	if total <= 0 {
		return nil
	}

	return &PeriodStats{
		Raw:      total,
		Billable: billing.Bill(total, ratePerHour),
		Label:    p.Label(),
	}
}
