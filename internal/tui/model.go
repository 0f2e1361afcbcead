// Package tui provides the Bubble Tea calculator screen.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/session"
)

const (
	focusBill = iota
	focusCustomTip
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C3E50")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#34495E")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).MarginTop(1)
	resultsStyle = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))

	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27AE60")).Bold(true)
	buttonStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#DDDDDD"))

	selectedButtonStyle = buttonStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3498DB")).BorderForeground(lipgloss.Color("#3498DB"))
	disabledButtonStyle = buttonStyle.Foreground(lipgloss.Color("#CCCCCC"))
)

// presetKeys maps shortcut keys to preset buttons, in Presets order.
var presetKeys = map[string]int{
	"f1": 0, "alt+1": 0,
	"f2": 1, "alt+2": 1,
	"f3": 2, "alt+3": 2,
	"f4": 3, "alt+4": 3,
}

// Model implements the Bubble Tea calculator screen.
type Model struct {
	sess *session.Session

	bill      textinput.Model
	customTip textinput.Model
	focus     int

	width int
}

// NewModel constructs the screen around sess.
func NewModel(sess *session.Session) *Model {
	bill := textinput.New()
	bill.Prompt = "$ "
	bill.Placeholder = "0.00"
	bill.Focus()

	custom := textinput.New()
	custom.Prompt = ""
	custom.Placeholder = "Custom"
	custom.CharLimit = 3
	custom.Width = 6

	m := &Model{
		sess:      sess,
		bill:      bill,
		customTip: custom,
		focus:     focusBill,
	}
	m.syncInputs()
	return m
}

// Session returns the session driven by the screen.
func (m *Model) Session() *session.Session {
	return m.sess
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		if idx, ok := presetKeys[key]; ok {
			m.apply(session.Event{Type: session.EventPreset, Value: calculator.Presets[idx]})
			return m, nil
		}
		switch key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			return m, m.toggleFocus()
		case "+", "up":
			m.apply(session.Event{Type: session.EventIncrement})
			return m, nil
		case "-", "down":
			m.apply(session.Event{Type: session.EventDecrement})
			return m, nil
		case "ctrl+r":
			m.apply(session.Event{Type: session.EventReset})
			return m, nil
		}
		return m, m.updateFocusedInput(msg)
	}
	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput lets the focused field edit its text, then runs the
// edit through the session. Rejected edits are undone in the field.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusBill {
		before := m.bill.Value()
		m.bill, cmd = m.bill.Update(msg)
		if raw := m.bill.Value(); raw != before {
			m.apply(session.Event{Type: session.EventBill, Text: raw})
		}
	} else {
		before := m.customTip.Value()
		m.customTip, cmd = m.customTip.Update(msg)
		if raw := m.customTip.Value(); raw != before {
			m.apply(session.Event{Type: session.EventCustomTip, Text: raw})
		}
	}
	return cmd
}

func (m *Model) apply(ev session.Event) {
	changed, err := m.sess.Apply(ev)
	if err != nil {
		slog.Error("Failed to apply event", "type", ev.Type, "error", err)
	} else if !changed {
		slog.Debug("Event ignored", "type", ev.Type, "text", ev.Text, "value", ev.Value)
	}
	m.syncInputs()
}

// syncInputs makes the fields show the committed state.
func (m *Model) syncInputs() {
	st := m.sess.State()
	if m.bill.Value() != st.BillAmount {
		m.bill.SetValue(st.BillAmount)
	}
	if m.customTip.Value() != st.Tip.CustomText {
		m.customTip.SetValue(st.Tip.CustomText)
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusBill {
		m.focus = focusCustomTip
		m.bill.Blur()
		return m.customTip.Focus()
	}
	m.focus = focusBill
	m.customTip.Blur()
	return m.bill.Focus()
}

// View implements tea.Model.
func (m *Model) View() string {
	st := m.sess.State()
	d := m.sess.Display()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tip Calculator"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Bill Amount"))
	b.WriteString("\n")
	b.WriteString(m.bill.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Tip Percentage"))
	b.WriteString("\n")
	b.WriteString(m.renderTipButtons(st.Tip))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Split Between"))
	b.WriteString("\n")
	b.WriteString(m.renderStepper(d))
	b.WriteString("\n\n")

	b.WriteString(renderResults(d))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch field • F1-F4 presets • +/- people • ctrl+r reset • esc quit"))
	b.WriteString("\n")

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m *Model) renderTipButtons(tip models.TipSelection) string {
	buttons := make([]string, 0, len(calculator.Presets)+1)
	for _, p := range calculator.Presets {
		style := buttonStyle
		if !tip.IsCustom() && tip.Percent == p {
			style = selectedButtonStyle
		}
		buttons = append(buttons, style.Render(fmt.Sprintf("%d%%", p)))
	}

	style := buttonStyle
	if tip.IsCustom() {
		style = selectedButtonStyle
	}
	buttons = append(buttons, style.Render(m.customTip.View()+"%"))
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (m *Model) renderStepper(d models.Display) string {
	minus, plus := buttonStyle, buttonStyle
	if !d.CanDecrement {
		minus = disabledButtonStyle
	}
	if !d.CanIncrement {
		plus = disabledButtonStyle
	}
	value := lipgloss.NewStyle().Padding(0, 2).Render(d.People)
	return lipgloss.JoinHorizontal(lipgloss.Center, minus.Render("−"), value, plus.Render("+"))
}

func renderResults(d models.Display) string {
	rows := []string{
		resultRow("Tip Amount", d.TipAmount, lipgloss.NewStyle()),
		resultRow("Total", d.Total, lipgloss.NewStyle()),
		resultRow("Per Person", d.PerPerson, highlightStyle),
	}
	return resultsStyle.Render(strings.Join(rows, "\n"))
}

func resultRow(label, value string, style lipgloss.Style) string {
	return fmt.Sprintf("%-12s %s", mutedStyle.Render(label), style.Render(fmt.Sprintf("%12s", value)))
}
