package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/store"
)

var rmCmd = &cobra.Command{
	Use:   "rm [session-id]",
	Short: "Delete a session",
	Long:  "Delete a session by its id (shown in 'punch history'). Deletion is immediate and permanent.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session id '%s'\n", args[0])
			return
		}

		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()

		err = app.Tracker.Delete(uint(id))
		if errors.Is(err, store.ErrSessionNotFound) {
			fmt.Printf("Session #%d not found.\n", id)
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted session #%d\n", id)
	},
}
