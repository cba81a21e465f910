package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/db"
)

var noteCmd = &cobra.Command{
	Use:   "note [idea-id] [text...]",
	Short: "Append a trace note to an idea",
	Long: `Append a timestamped trace note to an idea.

Examples:
  ideas note 42 "Sketched the data model"
  ideas note done 7        # toggle the done flag on note #7`,
	Args: cobra.MinimumNArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		ideaID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid idea ID '%s'\n", args[0])
			return
		}

		note, err := db.AddNote(uint(ideaID), strings.Join(args[1:], " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📝 Note #%d added to idea #%d\n", note.ID, ideaID)
	}),
}

var noteDoneCmd = &cobra.Command{
	Use:   "done [note-id]",
	Short: "Toggle a note's done flag",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		noteID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid note ID '%s'\n", args[0])
			return
		}

		note, err := db.ToggleNoteDone(uint(noteID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if note.Done {
			fmt.Printf("✅ Marked note #%d as done\n", note.ID)
		} else {
			fmt.Printf("↩️  Marked note #%d as not done\n", note.ID)
		}
	}),
}

func init() {
	noteCmd.AddCommand(noteDoneCmd)
}
