// Package render turns planner results into terminal output.
//
// Two modes are supported: Styled draws lipgloss tables, trees and
// colours for people; Plain writes tab-separated lines for scripts and
// tests. Results go to the Renderer's output writer; error reports go
// to its error writer so plain output stays clean for pipelines.
package render

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorAccent = lipgloss.Color("#2CD7C7")
	ColorBorder = lipgloss.Color("#16858E")
	ColorMuted  = lipgloss.Color("#2C4A54")
	ColorError  = lipgloss.Color("#E74C3C")
)

// Styles used by the styled mode.
var Styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorAccent),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Border:  lipgloss.NewStyle().Foreground(ColorBorder),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}

const (
	iconOK    = "✓"
	iconError = "✗"
	arrow     = " → "
)
