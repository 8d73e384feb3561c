// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/strengthmeter/core/strength"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan, also the "info" tier
	colorWarning   = lipgloss.Color("208") // Orange
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			PaddingBottom(1)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtle)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	headingStyle = lipgloss.NewStyle().Bold(true).PaddingTop(1)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)

// tierColor maps a tier's danger/warning/info/success semantics to a
// terminal color.
func tierColor(t strength.Tier) lipgloss.Color {
	switch t {
	case strength.TierWeak:
		return colorWarning
	case strength.TierGood:
		return colorHighlight
	case strength.TierStrong:
		return colorSuccess
	default:
		return colorError
	}
}
