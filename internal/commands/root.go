package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/echern/punch/internal/config"
	"github.com/echern/punch/internal/store"
	"github.com/echern/punch/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "A check-in/check-out time tracker",
	Long: `punch is a command-line time clock: check in when you arrive, check out
when you leave. Sessions are billed in quarter-hour steps and summarized
by day, month, and year, with an exportable monthly report.`,
}

// App bundles what every command needs: the loaded config, the session
// store, and the tracker over it.
type App struct {
	Config  *config.Config
	Store   *store.SQLiteStore
	Tracker *tracker.Tracker
}

// Close releases the store connection.
func (a *App) Close() {
	if a.Store != nil {
		a.Store.Close()
	}
}

// openApp loads the config and opens the session store.
func openApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	return &App{
		Config:  cfg,
		Store:   st,
		Tracker: tracker.New(st, nil, cfg.RatePerHour),
	}, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
