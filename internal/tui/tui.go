package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunAddIdeaTUI starts the interactive add-idea form
func RunAddIdeaTUI(title, description string) error {
	model := NewAddIdeaModel(title, description)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddIdeaModel); ok {
		if m.cancelled {
			fmt.Println("❌ Idea cancelled.")
		} else if m.completed && m.createdID > 0 {
			fmt.Printf("💡 New idea \"%s\" saved - ID: %d\n", m.createdTitle, m.createdID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
