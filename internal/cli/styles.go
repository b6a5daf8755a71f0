// SPDX-License-Identifier: MIT

package cli

import "github.com/charmbracelet/lipgloss"

// Palette for headings and notes. Colours degrade to plain text when the
// output is not a terminal.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
)

var (
	// titleStyle renders the pose kind above its matrices.
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	// noteStyle renders derived values such as angles and translations.
	noteStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// okStyle renders a successful validation verdict.
	okStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
)
