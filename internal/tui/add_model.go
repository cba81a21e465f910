package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dfrestrepo/ideas/internal/db"
)

// focus targets for the add-idea form
const (
	focusTitle = iota
	focusDescription
)

// AddIdeaModel is the two-field form for recording an idea: title and
// description, both required.
type AddIdeaModel struct {
	width  int
	height int

	titleInput textinput.Model
	descInput  textarea.Model
	focused    int

	// State
	err           error
	validationErr string
	completed     bool
	cancelled     bool
	createdID     uint
	createdTitle  string
}

// NewAddIdeaModel creates the add-idea form, optionally pre-filled from
// command arguments.
func NewAddIdeaModel(title, description string) AddIdeaModel {
	ti := textinput.New()
	ti.Placeholder = "Idea title... (required)"
	ti.CharLimit = 200
	ti.Width = 60
	ti.SetValue(title)
	ti.Focus()
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	ta := textarea.New()
	ta.Placeholder = "Describe the idea... (required)"
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.SetValue(description)

	return AddIdeaModel{
		titleInput: ti,
		descInput:  ta,
		focused:    focusTitle,
	}
}

// Init implements tea.Model
func (m AddIdeaModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddIdeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "shift+tab":
			m.validationErr = ""
			if m.focused == focusTitle {
				m.focused = focusDescription
				m.titleInput.Blur()
				return m, m.descInput.Focus()
			}
			m.focused = focusTitle
			m.descInput.Blur()
			return m, m.titleInput.Focus()

		case "enter":
			// Enter advances from the title; in the description it inserts
			// a newline, so saving is ctrl+s there.
			if m.focused == focusTitle {
				m.validationErr = ""
				m.focused = focusDescription
				m.titleInput.Blur()
				return m, m.descInput.Focus()
			}

		case "ctrl+s":
			return m.save()
		}
	}

	var cmd tea.Cmd
	if m.focused == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m AddIdeaModel) save() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	description := strings.TrimSpace(m.descInput.Value())

	if title == "" || description == "" {
		m.validationErr = "Complete both fields please"
		return m, nil
	}

	idea, err := db.CreateIdea(db.CreateIdeaRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.completed = true
	m.createdID = idea.ID
	m.createdTitle = idea.Title
	return m, tea.Quit
}

// View renders the form
func (m AddIdeaModel) View() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	dimLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	titleLabel := dimLabelStyle.Render("Title")
	descLabel := dimLabelStyle.Render("Description")
	if m.focused == focusTitle {
		titleLabel = labelStyle.Render("Title")
	} else {
		descLabel = labelStyle.Render("Description")
	}

	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(headerStyle.Render("💡 New idea"))
	b.WriteString("\n\n")

	b.WriteString(titleLabel + "\n")
	b.WriteString(m.titleInput.View() + "\n\n")
	b.WriteString(descLabel + "\n")
	b.WriteString(m.descInput.View() + "\n\n")

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render(m.validationErr) + "\n\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("tab switch field · ctrl+s save · esc cancel"))

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return formStyle.Render(b.String())
}
