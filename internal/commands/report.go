package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/report"
	"github.com/echern/punch/internal/tracker"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the monthly report",
	Long: `Render the monthly report: one row per session (date, arrival, leave,
duration) and a totals footer. Defaults to the current month.

Examples:
  punch report
  punch report --year 2024 --month 12
  punch report --year 2024 --month 12 --output december.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		output, _ := cmd.Flags().GetString("output")

		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		if month < 1 || month > 12 {
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
			fmt.Printf("No sessions in %s %d.\n", time.Month(month), year)
			return
		}

		stats := tracker.PeriodStatistics(filtered, period, app.Config.RatePerHour)
		rendered := report.Render(year, time.Month(month), filtered, stats, app.Config.CurrencySymbol)

		if output == "" {
			fmt.Print(rendered)
			return
		}

		if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
			fmt.Printf("Error: failed to write report: %v\n", err)
			return
		}
		fmt.Printf("📄 Report written to %s\n", output)
	},
}

func init() {
	reportCmd.Flags().IntP("year", "y", 0, "Report year (defaults to current)")
	reportCmd.Flags().IntP("month", "m", 0, "Report month 1-12 (defaults to current)")
	reportCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
}
