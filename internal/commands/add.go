package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/parser"
	"github.com/echern/punch/internal/report"
	"github.com/echern/punch/internal/tracker"
	"github.com/echern/punch/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [arrive] [leave]",
	Short: "Add a past session manually",
	Long: `Add a fully closed session for a visit that was not tracked live.
Manual entries do not touch the open session, if any.

Modes:
  Interactive: punch add -i (or just 'punch add' with no arguments)
  Direct:      punch add "2024-12-15 18:30" "2024-12-15 20:00"

Timestamp formats:
  yyyy-mm-dd hh:mm, dd/mm/yyyy hh:mm, today hh:mm, yesterday hh:mm, hh:mm`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()

		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) < 2 || interactive {
			if err := tui.RunEntryTUI(app.Tracker, app.Config.CurrencySymbol); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		arriveAt, err := parser.ParseTimestamp(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		leaveAt, err := parser.ParseTimestamp(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := app.Tracker.AddManual(arriveAt, leaveAt)
		if errors.Is(err, tracker.ErrInvalidInterval) {
			fmt.Println("Error: leave time must be after arrive time.")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration, _ := session.Duration()
		cost, _ := session.Cost(app.Config.RatePerHour)
		fmt.Printf("✅ Added session #%d: %s → %s (%s, %s)\n",
			session.ID,
			session.ArriveAt.Format("Jan 2 15:04"),
			session.LeaveAt.Format("Jan 2 15:04"),
			report.FormatDuration(duration),
			report.FormatMoney(app.Config.CurrencySymbol, cost))
	},
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Add the session through the interactive form")
}
