package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lcollet/schemapick/internal/ports"
)

type candidateMsg struct {
	candidate ports.Candidate
}

type candidatesDoneMsg struct{}

// pickerModel surfaces the selection list immediately and fills it as
// candidates stream in, so the user is never blocked on network latency.
type pickerModel struct {
	spinner    spinner.Model
	styles     styles
	source     <-chan ports.Candidate
	candidates []ports.Candidate
	cursor     int
	loading    bool
	done       bool
	cancelled  bool
}

func newPickerModel(source <-chan ports.Candidate) pickerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return pickerModel{
		spinner: s,
		styles:  newStyles(),
		source:  source,
		loading: true,
	}
}

func waitForCandidate(source <-chan ports.Candidate) tea.Cmd {
	return func() tea.Msg {
		candidate, ok := <-source
		if !ok {
			return candidatesDoneMsg{}
		}
		return candidateMsg{candidate: candidate}
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForCandidate(m.source))
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case candidateMsg:
		m.candidates = append(m.candidates, msg.candidate)
		return m, waitForCandidate(m.source)
	case candidatesDoneMsg:
		m.loading = false
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m pickerModel) updateKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.candidates) == 0 {
			return m, nil
		}
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

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.question.Render("Select the organization for this workspace"))
	b.WriteString("\n\n")

	for i, candidate := range m.candidates {
		line := fmt.Sprintf("%s %s",
			m.styles.candidate.Render(string(candidate.Organization)),
			m.styles.session.Render("("+candidate.Session.Label()+")"))
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "))
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.loading.Render("fetching organizations…"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.session.Render("enter select · esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m pickerModel) result() (ports.Candidate, bool) {
	if m.cancelled || len(m.candidates) == 0 {
		return ports.Candidate{}, false
	}

	return m.candidates[m.cursor], true
}
