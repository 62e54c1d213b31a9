// Package ui renders CratePack reports for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#00FF99")
	colorHeader  = lipgloss.Color("#874BFD")
	colorTextSub = lipgloss.Color("#64748B")
	colorDanger  = lipgloss.Color("#FF0055")
	colorWarning = lipgloss.Color("#F59E0B")

	titleStyle  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtle      = lipgloss.NewStyle().Foreground(colorTextSub)
	danger      = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	warning     = lipgloss.NewStyle().Foreground(colorWarning)
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// Title renders a section heading.
func Title(s string) string { return titleStyle.Render(s) }

// Muted renders secondary text.
func Muted(s string) string { return subtle.Render(s) }

// Warn renders a warning line.
func Warn(s string) string { return warning.Render(s) }

// Error renders an error line.
func Error(s string) string { return danger.Render(s) }

// Flag renders one line of flag help.
func Flag(s string) string { return flagStyle.Render(s) }
