package ui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for text rendered outside the prefix
// printers, such as usage hints and scaffolding output. lipgloss
// degrades to plain text on terminals without color support.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
