package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	question  string
	styles    styles
	yes       bool
	done      bool
	cancelled bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question, styles: newStyles(), yes: true}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
		return m, nil
	case "y", "Y":
		m.yes = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.yes = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.question.Render(m.question))
	b.WriteString("\n\n  ")

	yes, no := "Yes", "No"
	if m.yes {
		b.WriteString(m.styles.selected.Render("[" + yes + "]"))
		b.WriteString("  ")
		b.WriteString(m.styles.option.Render(" " + no + " "))
	} else {
		b.WriteString(m.styles.option.Render(" " + yes + " "))
		b.WriteString("  ")
		b.WriteString(m.styles.selected.Render("[" + no + "]"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.session.Render("enter confirm · y/n pick · esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m confirmModel) result() (bool, error) {
	if m.cancelled {
		return false, nil
	}

	return m.yes, nil
}
