package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/billing"
	"github.com/echern/punch/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are checked in",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()

		session, err := app.Tracker.Current()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if session == nil {
			fmt.Println("Not checked in.")
			return
		}

		elapsed := time.Since(session.ArriveAt)
		charge := billing.Bill(elapsed, app.Config.RatePerHour)

		fmt.Printf("🟢 Checked in since %s\n", session.ArriveAt.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", report.FormatDuration(elapsed))
		fmt.Printf("Billable so far: %s (%s)\n",
			report.FormatDuration(charge.Duration),
			report.FormatMoney(app.Config.CurrencySymbol, charge.Cost))
	},
}
