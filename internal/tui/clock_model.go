package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/echern/punch/internal/billing"
	"github.com/echern/punch/internal/models"
	"github.com/echern/punch/internal/report"
	"github.com/echern/punch/internal/tracker"
)

// ClockModel is the live view shown while a session is open: a big
// elapsed-time clock with the billable amount accrued so far.
type ClockModel struct {
	width  int
	height int

	session  *models.Session
	rate     float64
	currency string

	elapsed time.Duration

	// UI state
	checkingOut bool // user pressed o: close the session on exit
	leaving     bool // user pressed esc/q: keep the session running
}

// clockTickMsg is sent every second to refresh the elapsed time
type clockTickMsg struct{}

// NewClockModel creates the live clock view for an open session.
func NewClockModel(session *models.Session, rate float64, currency string) ClockModel {
	return ClockModel{
		session:  session,
		rate:     rate,
		currency: currency,
		elapsed:  time.Since(session.ArriveAt),
	}
}

// Init starts the per-second ticker
func (m ClockModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// Update handles messages
func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.elapsed = time.Since(m.session.ArriveAt)
		if !m.checkingOut && !m.leaving {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return clockTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "o", "O":
			// Check out and close the session
			m.checkingOut = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave with the session still running
			m.leaving = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the clock
func (m ClockModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render("⏱  ON THE CLOCK  ⏱"))

	components = append(components, m.renderBigClock())

	arriveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, arriveStyle.Render(
		fmt.Sprintf("Checked in at %s", m.session.ArriveAt.Format("15:04:05"))))

	charge := billing.Bill(m.elapsed, m.rate)
	billableStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, billableStyle.Render(
		fmt.Sprintf("Billable so far: %s (%s)",
			report.FormatDuration(charge.Duration),
			report.FormatMoney(m.currency, charge.Cost))))

	content := strings.Join(components, "\n\n")

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelpBar())
}

// Seven-segment glyphs for the clock digits, three rows each.
var clockGlyphs = map[rune][3]string{
	'0': {" _ ", "| |", "|_|"},
	'1': {"   ", "  |", "  |"},
	'2': {" _ ", " _|", "|_ "},
	'3': {" _ ", " _|", " _|"},
	'4': {"   ", "|_|", "  |"},
	'5': {" _ ", "|_ ", " _|"},
	'6': {" _ ", "|_ ", "|_|"},
	'7': {" _ ", "  |", "  |"},
	'8': {" _ ", "|_|", "|_|"},
	'9': {" _ ", "|_|", " _|"},
	':': {"   ", " o ", " o "},
}

// renderBigClock renders the elapsed time as large seven-segment digits
func (m ClockModel) renderBigClock() string {
	hours := int(m.elapsed.Hours())
	minutes := int(m.elapsed.Minutes()) % 60
	seconds := int(m.elapsed.Seconds()) % 60

	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	var rows [3]strings.Builder
	for _, char := range timeStr {
		glyph, ok := clockGlyphs[char]
		if !ok {
			continue
		}
		for i := 0; i < 3; i++ {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}

	digitStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	lines := make([]string, 3)
	for i := range rows {
		lines[i] = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(digitStyle.Render(rows[i].String()))
	}
	return strings.Join(lines, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m ClockModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("o check out · esc/q exit (stay checked in) · ctrl+c force quit")
}

// RunClockTUI runs the live clock for an open session.
func RunClockTUI(t *tracker.Tracker, session *models.Session, currency string) error {
	model := NewClockModel(session, t.Rate(), currency)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	clockModel := finalModel.(ClockModel)
	if clockModel.checkingOut {
		closed, err := t.PunchOut()
		if err != nil {
			return fmt.Errorf("failed to check out: %w", err)
		}

		duration, _ := closed.Duration()
		cost, _ := closed.Cost(t.Rate())
		fmt.Printf("🔴 Checked out at %s\n", closed.LeaveAt.Format("15:04:05"))
		fmt.Printf("Session duration: %s (%s)\n",
			report.FormatDuration(duration),
			report.FormatMoney(currency, cost))
	} else if clockModel.leaving {
		fmt.Printf("\n💡 Still checked in since %s.\n", session.ArriveAt.Format("15:04:05"))
		fmt.Printf("   Use 'punch status' to check the clock or 'punch out' to leave.\n")
	}

	return nil
}
