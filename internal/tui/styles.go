package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Status styles shared by the check-in console and command output.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Success renders a success status line.
func Success(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// Failure renders an error status line.
func Failure(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// Notice renders an informational status line.
func Notice(msg string) string {
	return InfoStyle.Render(msg)
}
