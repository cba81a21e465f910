package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/db"
	"github.com/dfrestrepo/ideas/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List ideas",
	Long:    "List recorded ideas, newest first, with note counts and invested time",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		ideas, err := db.GetIdeas()
		if err != nil {
			fmt.Printf("Error fetching ideas: %v\n", err)
			return
		}

		if len(ideas) == 0 {
			fmt.Println("No ideas yet. Use 'ideas add' to record your first one.")
			return
		}

		loc := displayZone()

		// Print table header
		fmt.Printf("%-4s %-6s %-40s %-16s %-6s %s\n", "ID", "STATUS", "TITLE", "CREATED", "NOTES", "INVESTED")
		fmt.Println(strings.Repeat("-", 84))

		// Print each idea
		for _, idea := range ideas {
			title := idea.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			created := clock.Display(idea.CreatedAt, loc).Format("2006-01-02 15:04")

			invested := "-"
			total, err := aggregator.Total(models.IdeaOwner(idea.ID))
			if err == nil && total > 0 {
				invested = formatDuration(total)
			}

			fmt.Printf("%-4d %-6s %-40s %-16s %-6d %s\n",
				idea.ID,
				idea.Status,
				title,
				created,
				len(idea.Notes),
				invested)
		}
	}),
}

var showCmd = &cobra.Command{
	Use:   "show [idea-id]",
	Short: "Show an idea with its trace notes",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid idea ID '%s'\n", args[0])
			return
		}

		idea, err := db.GetIdeaByID(uint(id))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		loc := displayZone()

		fmt.Printf("💡 #%d %s  —  %s\n", idea.ID, idea.Title,
			clock.Display(idea.CreatedAt, loc).Format("2006-01-02 15:04"))
		fmt.Println(idea.Description)

		if len(idea.Notes) == 0 {
			return
		}

		fmt.Println("\nTrace notes:")
		for _, note := range idea.Notes {
			mark := " "
			if note.Done {
				mark = "x"
			}
			fmt.Printf("  [%s] #%d %s  ⏰ %s\n", mark, note.ID, note.Text,
				clock.Display(note.CreatedAt, loc).Format("2006-01-02 15:04"))
		}
	}),
}
