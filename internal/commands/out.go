package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/report"
	"github.com/echern/punch/internal/store"
)

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Check out and close the open session",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()

		session, err := app.Tracker.PunchOut()
		if errors.Is(err, store.ErrNoOpenSession) {
			fmt.Println("You are not checked in.")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration, _ := session.Duration()
		cost, _ := session.Cost(app.Config.RatePerHour)

		fmt.Printf("🔴 Checked out at %s\n", session.LeaveAt.Format("15:04:05"))
		fmt.Printf("Session duration: %s (%s)\n",
			report.FormatDuration(duration),
			report.FormatMoney(app.Config.CurrencySymbol, cost))
	},
}
