package commands

import (
	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/config"
	"github.com/dfrestrepo/ideas/internal/db"
	"github.com/dfrestrepo/ideas/internal/notify"
	"github.com/dfrestrepo/ideas/internal/report"
	"github.com/dfrestrepo/ideas/internal/timer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg        *config.Config
	engine     *timer.Engine
	aggregator *report.Aggregator
	notifier   *notify.Notifier
)

var rootCmd = &cobra.Command{
	Use:   "ideas",
	Short: "A CLI idea tracker with time tracking",
	Long: `ideas is a command-line tool for capturing app ideas, appending trace
notes to them, and tracking elapsed working time against an idea or the
standalone development activity.`,
}

// initApp loads config, opens the database and wires the timer engine.
// Panics on init failure, like any broken local installation would.
func initApp() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}

	db.SetLogger(cfg.Logger())
	if err := db.Initialize(cfg.DBPath); err != nil {
		panic(err)
	}

	sessions := db.Sessions()
	engine = timer.New(sessions)
	aggregator = report.New(sessions)
	notifier = notify.New(cfg.WebhookURL, cfg.Logger())
}

// withApp wraps a command function to initialize the app first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ideas %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
