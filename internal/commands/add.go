package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/db"
	"github.com/dfrestrepo/ideas/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Record a new idea",
	Long: `Record a new idea. Opens an interactive form by default; pass the title
as an argument and --desc for a non-interactive add.

Examples:
  ideas add                                  # Interactive form
  ideas add "Recipe planner" --desc "Weekly meal planning app" --no-ui`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		description, _ := cmd.Flags().GetString("desc")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		if noUI {
			idea, err := db.CreateIdea(db.CreateIdeaRequest{
				Title:       title,
				Description: description,
			})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("💡 New idea \"%s\" saved - ID: %d\n", idea.Title, idea.ID)
			return
		}

		if err := tui.RunAddIdeaTUI(title, description); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	addCmd.Flags().StringP("desc", "d", "", "Idea description")
	addCmd.Flags().Bool("no-ui", false, "Add without interactive form")
}
