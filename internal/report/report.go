package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/echern/punch/internal/models"
	"github.com/echern/punch/internal/tracker"
)

const (
	dateLayout = "Jan 2, 2006"
	timeLayout = "3:04 PM"
)

// FormatDuration renders a duration the way the history and report
// screens show it: whole hours and minutes, "<1 min" below a minute.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "<1 min"
	}

	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// FormatMoney renders an amount with the configured currency symbol.
func FormatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Render produces the monthly report: a fixed-column table of the
// period's sessions followed by a totals footer. The totals come from
// the aggregator as-is; nothing is recomputed here.
func Render(year int, month time.Month, sessions []models.Session, stats *tracker.PeriodStats, currencySymbol string) string {
	var b strings.Builder

	b.WriteString("Punch Use Record\n")
	fmt.Fprintf(&b, "%s %d\n\n", month.String(), year)

	fmt.Fprintf(&b, "%-14s %-10s %-10s %s\n", "Date", "Arrive", "Leave", "Duration")
	b.WriteString(strings.Repeat("-", 46))
	b.WriteString("\n")

	for _, s := range sessions {
		arrive := s.ArriveAt.Local()

		leave := "—"
		if s.LeaveAt != nil {
			leave = s.LeaveAt.Local().Format(timeLayout)
		}

		duration := "—"
		if d, ok := s.Duration(); ok {
			duration = FormatDuration(d)
		}

		fmt.Fprintf(&b, "%-14s %-10s %-10s %s\n",
			arrive.Format(dateLayout),
			arrive.Format(timeLayout),
			leave,
			duration)
	}

	b.WriteString(strings.Repeat("-", 46))
	b.WriteString("\n")

	totalTime := "0m"
	totalCost := FormatMoney(currencySymbol, 0)
	if stats != nil {
		totalTime = FormatDuration(stats.Billable.Duration)
		totalCost = FormatMoney(currencySymbol, stats.Billable.Cost)
	}

	fmt.Fprintf(&b, "%-14s %s\n", "Total Time:", totalTime)
	fmt.Fprintf(&b, "%-14s %s\n", "Total Cost:", totalCost)

	return b.String()
}
