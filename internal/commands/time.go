package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/db"
	"github.com/dfrestrepo/ideas/internal/notify"
	"github.com/dfrestrepo/ideas/internal/timer"
	"github.com/dfrestrepo/ideas/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [idea-id|dev]",
	Short: "Start tracking time on an idea or on development",
	Long: `Start tracking time. Opens the interactive timer by default, use --no-ui
for a simple start.

Examples:
  ideas start 42        # Start timer on idea #42 with interactive UI
  ideas start dev       # Track standalone development work
  ideas start 42 --no-ui`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		ownerID, label, err := resolveOwner(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := engine.Start(ownerID)
		if err != nil {
			if errors.Is(err, timer.ErrAlreadyRunning) {
				fmt.Printf("Error: a session is already running for %s. Stop it first with 'ideas stop'\n", label)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		notifier.Send(notify.Event{
			Action:  "started",
			OwnerID: ownerID,
			At:      session.StartedAt,
		})

		// Check if --no-ui flag is set
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			startedLocal := clock.Display(session.StartedAt, displayZone())
			fmt.Printf("⏱️  Started tracking time for %s\n", label)
			fmt.Printf("Started at: %s\n", startedLocal.Format("15:04:05"))
			return
		}

		// Interactive timer UI
		if err := tui.RunTimerTUI(engine, session, label, displayZone()); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop [idea-id|dev]",
	Short: "Stop tracking time",
	Long:  "Stop the running session. Without an argument, stops whichever session is open.",
	Args:  cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		ownerID := ""
		if len(args) == 1 {
			owner, _, err := resolveOwner(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			ownerID = owner
		} else {
			open, err := db.Sessions().ListOpenSessions()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if len(open) == 0 {
				fmt.Println("Error: no active session found")
				return
			}
			ownerID = open[0].OwnerID
		}

		session, err := engine.Stop(ownerID)
		if err != nil {
			if errors.Is(err, timer.ErrNotRunning) {
				fmt.Printf("Error: no active session for %s\n", ownerLabel(ownerID))
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		notifier.Send(notify.Event{
			Action:          "stopped",
			OwnerID:         ownerID,
			At:              *session.EndedAt,
			DurationSeconds: session.DurationSeconds,
		})

		fmt.Printf("⏹️  Stopped tracking time for %s\n", ownerLabel(session.OwnerID))
		fmt.Printf("Session duration: %s\n", formatDuration(session.Duration()))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current time tracking status",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		open, err := db.Sessions().ListOpenSessions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(open) == 0 {
			fmt.Println("No active time tracking session")
			return
		}

		loc := displayZone()
		for _, session := range open {
			elapsed := time.Since(session.StartedAt)
			startedLocal := clock.Display(session.StartedAt, loc)
			fmt.Printf("⏱️  Currently tracking: %s\n", ownerLabel(session.OwnerID))
			fmt.Printf("Started at: %s\n", startedLocal.Format("15:04:05"))
			fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
		}
	}),
}

func init() {
	// Add --no-ui flag to start command
	startCmd.Flags().Bool("no-ui", false, "Start timer without interactive UI")
}
