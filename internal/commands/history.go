package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/models"
	"github.com/echern/punch/internal/report"
	"github.com/echern/punch/internal/tracker"
	"github.com/echern/punch/internal/tui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past sessions grouped by day",
	Long: `Show past sessions grouped by calendar day, newest day first, with a
statistics card for the selected period.

Examples:
  punch history                      # everything
  punch history --year 2024          # one year
  punch history --year 2024 --month 12`,
	Run: func(cmd *cobra.Command, args []string) {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")

		if month != 0 && year == 0 {
			fmt.Println("Error: --month requires --year")
			return
		}
		if month < 0 || month > 12 {
			fmt.Println("Error: --month must be between 1 and 12")
			return
		}

		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()

		sessions, err := app.Tracker.Sessions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		period := tracker.Period{Year: year, Month: time.Month(month)}
		filtered := tracker.FilterByPeriod(sessions, period)

		if len(filtered) == 0 {
			fmt.Println("No sessions for the selected period.")
			return
		}

		if stats := tracker.PeriodStatistics(filtered, period, app.Config.RatePerHour); stats != nil {
			printStatsCard(stats, app.Config.CurrencySymbol)
		}

		for _, group := range tracker.GroupByDay(filtered) {
			printDayCard(group, app.Config.RatePerHour, app.Config.CurrencySymbol)
		}
	},
}

var (
	statsCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(tui.ColorPrimaryText)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(tui.ColorAccentMain)).
			Padding(0, 2)

	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(tui.ColorAccentBright)).
			Bold(true)

	openSessionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(tui.ColorSuccess)).
				Italic(true)
)

func printStatsCard(stats *tracker.PeriodStats, currency string) {
	card := fmt.Sprintf("Statistics (%s)\nTotal time: %s\nTotal cost: %s",
		stats.Label,
		report.FormatDuration(stats.Billable.Duration),
		report.FormatMoney(currency, stats.Billable.Cost))
	fmt.Println(statsCardStyle.Render(card))
	fmt.Println()
}

func printDayCard(group tracker.DayGroup, rate float64, currency string) {
	fmt.Println(dayHeaderStyle.Render(group.Day.Format("Mon, Jan 2, 2006")))

	for _, s := range group.Sessions {
		printSessionRow(s, rate, currency)
	}
	fmt.Println()
}

func printSessionRow(s models.Session, rate float64, currency string) {
	arrive := s.ArriveAt.Local().Format("3:04 PM")

	if s.Open() {
		fmt.Printf("  #%-4d %s → %s\n", s.ID, arrive, openSessionStyle.Render("in progress..."))
		return
	}

	leave := s.LeaveAt.Local().Format("3:04 PM")
	duration, _ := s.Duration()
	cost, _ := s.Cost(rate)

	fmt.Printf("  #%-4d %s → %-9s %-8s %s\n",
		s.ID, arrive, leave,
		report.FormatDuration(duration),
		report.FormatMoney(currency, cost))
}

func init() {
	historyCmd.Flags().IntP("year", "y", 0, "Filter by calendar year")
	historyCmd.Flags().IntP("month", "m", 0, "Filter by month (1-12, requires --year)")
}
