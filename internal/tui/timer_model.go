package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dfrestrepo/ideas/internal/clock"
	"github.com/dfrestrepo/ideas/internal/models"
	"github.com/dfrestrepo/ideas/internal/timer"
)

// TimerModel is the TUI model for a running session. Elapsed time is
// re-read from the store through the engine on every tick; the model
// itself is only a display cache and survives nothing.
type TimerModel struct {
	width  int
	height int

	engine  *timer.Engine
	session *models.Session
	label   string
	loc     *time.Location

	elapsed time.Duration
	tickErr error

	// UI state
	stopping bool // True when user pressed S and we're stopping
	exiting  bool // True when user pressed ESC/Q and we're exiting without stopping
}

// timerTickMsg is sent every second to refresh the elapsed display
type timerTickMsg struct{}

// NewTimerModel creates a new timer TUI model
func NewTimerModel(engine *timer.Engine, session *models.Session, label string, loc *time.Location) TimerModel {
	return TimerModel{
		engine:  engine,
		session: session,
		label:   label,
		loc:     loc,
		elapsed: time.Since(session.StartedAt),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Init starts the once-per-second refresh
func (m TimerModel) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		// Read-only poll; the store stays the source of truth
		elapsed, running, err := m.engine.Elapsed(m.session.OwnerID)
		m.tickErr = err
		if running {
			m.elapsed = elapsed
		} else if err == nil {
			// Session was closed from elsewhere; nothing left to time
			m.exiting = true
			return m, tea.Quit
		}

		if !m.stopping && !m.exiting {
			return m, tick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// Stop the timer and save
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Exit without stopping
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render("⏱  TRACKING TIME"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	label := m.label
	if len(label) > m.width-4 {
		label = label[:m.width-7] + "..."
	}
	components = append(components, labelStyle.Render(label))

	components = append(components, m.renderClock())

	sessionInfo := fmt.Sprintf("Started at %s", clock.Display(m.session.StartedAt, m.loc).Format("15:04:05"))
	sessionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, sessionStyle.Render(sessionInfo))

	if m.tickErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, errStyle.Render(fmt.Sprintf("store error: %v", m.tickErr)))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		helpBar,
	)
}

// renderClock renders the elapsed time as a large bordered clock
func (m TimerModel) renderClock() string {
	hours := int(m.elapsed.Hours())
	minutes := int(m.elapsed.Minutes()) % 60
	seconds := int(m.elapsed.Seconds()) % 60

	var timeStr string
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d : %02d : %02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d : %02d", minutes, seconds)
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 4)

	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(clockStyle.Render(timeStr))
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s stop & save · esc/q exit (keep running) · ctrl+c force quit")
}

// RunTimerTUI runs the timer TUI for a freshly started session
func RunTimerTUI(engine *timer.Engine, session *models.Session, label string, loc *time.Location) error {
	model := NewTimerModel(engine, session, label, loc)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel := finalModel.(TimerModel)
	if timerModel.stopping {
		stopped, err := engine.Stop(session.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}

		fmt.Printf("⏹️  Stopped tracking time for %s\n", label)
		fmt.Printf("📊 Session duration: %s\n", formatDuration(stopped.Duration()))
	} else if timerModel.exiting {
		if open, err := engine.Running(session.OwnerID); err == nil && open != nil {
			fmt.Printf("\n💡 Timer is still running in the background for %s\n", label)
			fmt.Printf("   Use 'ideas status' to check it or 'ideas stop' to stop it.\n")
		}
	}

	return nil
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
