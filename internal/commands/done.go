package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/db"
)

var doneCmd = &cobra.Command{
	Use:   "done [idea-id]",
	Short: "Mark an idea as completed",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		ideaID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid idea ID '%s'\n", args[0])
			return
		}

		idea, err := db.MarkIdeaDone(uint(ideaID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Marked idea #%d as done: %s\n", idea.ID, idea.Title)
		if idea.DoneAt != nil {
			doneLocal := clock.Display(*idea.DoneAt, displayZone())
			fmt.Printf("Completed at: %s\n", doneLocal.Format("15:04:05"))
		}
	}),
}
