package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/echern/punch/internal/models"
	"github.com/echern/punch/internal/parser"
	"github.com/echern/punch/internal/report"
	"github.com/echern/punch/internal/tracker"
)

const (
	fieldArrive = iota
	fieldLeave
)

// EntryModel is the interactive form for adding a past session: an
// arrive timestamp and a leave timestamp.
type EntryModel struct {
	tracker  *tracker.Tracker
	currency string

	inputs  []textinput.Model
	focused int
	width   int
	height  int

	// State
	validationErr string
	err           error
	completed     bool
	cancelled     bool
	created       *models.Session
}

// NewEntryModel creates the manual entry form.
func NewEntryModel(t *tracker.Tracker, currency string) EntryModel {
	inputs := make([]textinput.Model, 2)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 40

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[fieldArrive].Placeholder = "e.g. yesterday 09:00"
	inputs[fieldArrive].Focus()
	inputs[fieldLeave].Placeholder = "e.g. yesterday 11:30"

	return EntryModel{tracker: t, currency: currency, inputs: inputs}
}

// Init initializes the form
func (m EntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case "enter":
			if m.focused == fieldArrive {
				return m.focusField(fieldLeave), nil
			}
			return m.submit()

		case "tab", "down":
			return m.focusField((m.focused + 1) % len(m.inputs)), nil

		case "shift+tab", "up":
			return m.focusField((m.focused + len(m.inputs) - 1) % len(m.inputs)), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m EntryModel) focusField(i int) EntryModel {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
	return m
}

// submit parses both fields and records the session.
func (m EntryModel) submit() (tea.Model, tea.Cmd) {
	arriveAt, err := parser.ParseTimestamp(m.inputs[fieldArrive].Value())
	if err != nil {
		m.validationErr = fmt.Sprintf("arrive: %v", err)
		return m.focusField(fieldArrive), nil
	}

	leaveAt, err := parser.ParseTimestamp(m.inputs[fieldLeave].Value())
	if err != nil {
		m.validationErr = fmt.Sprintf("leave: %v", err)
		return m.focusField(fieldLeave), nil
	}

	session, err := m.tracker.AddManual(arriveAt, leaveAt)
	if errors.Is(err, tracker.ErrInvalidInterval) {
		m.validationErr = "leave time must be after arrive time"
		return m.focusField(fieldLeave), nil
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.validationErr = ""
	m.completed = true
	m.created = session
	return m, tea.Quit
}

// View renders the form
func (m EntryModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	s := titleStyle.Render("Add a past session") + "\n\n"
	s += labelStyle.Render("Arrive") + "\n" + m.inputs[fieldArrive].View() + "\n\n"
	s += labelStyle.Render("Leave") + "\n" + m.inputs[fieldLeave].View() + "\n\n"

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		s += errStyle.Render("✗ "+m.validationErr) + "\n\n"
	}

	s += helpStyle.Render("enter next/save · tab switch field · esc cancel")
	return s
}

// RunEntryTUI runs the interactive manual entry form.
func RunEntryTUI(t *tracker.Tracker, currency string) error {
	model := NewEntryModel(t, currency)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(EntryModel); ok {
		if m.cancelled {
			fmt.Println("❌ Entry cancelled.")
		} else if m.completed && m.created != nil {
			duration, _ := m.created.Duration()
			cost, _ := m.created.Cost(t.Rate())
			fmt.Printf("✅ Added session #%d: %s → %s (%s, %s)\n",
				m.created.ID,
				m.created.ArriveAt.Format("Jan 2 15:04"),
				m.created.LeaveAt.Format("Jan 2 15:04"),
				report.FormatDuration(duration),
				report.FormatMoney(m.currency, cost))
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
