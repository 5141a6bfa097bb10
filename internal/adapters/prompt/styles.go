package prompt

import "github.com/charmbracelet/lipgloss"

type styles struct {
	question  lipgloss.Style
	option    lipgloss.Style
	selected  lipgloss.Style
	cursor    lipgloss.Style
	candidate lipgloss.Style
	session   lipgloss.Style
	loading   lipgloss.Style
	errorText lipgloss.Style
}

func newStyles() styles {
	return styles{
		question:  lipgloss.NewStyle().Bold(true),
		option:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		candidate: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		session:   lipgloss.NewStyle().Faint(true),
		loading:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
