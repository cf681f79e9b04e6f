package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/store"
	"github.com/echern/punch/internal/tui"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Check in and open a session",
	Long: `Check in, opening a new session at the current time. Shows the live
clock by default, use --no-ui for a plain check-in.

Examples:
  punch in         # Check in with the live clock
  punch in --no-ui # Check in and return to the shell`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()

		session, err := app.Tracker.PunchIn()
		if errors.Is(err, store.ErrOpenSessionExists) {
			fmt.Println("You are already checked in. Use 'punch out' to leave first.")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("🟢 Checked in at %s\n", session.ArriveAt.Format("15:04:05"))
			return
		}

		if err := tui.RunClockTUI(app.Tracker, session, app.Config.CurrencySymbol); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	inCmd.Flags().Bool("no-ui", false, "Check in without the live clock")
}
