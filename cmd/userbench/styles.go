// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Palette for every styled line the CLI prints. Picked for dark
// terminals; lipgloss degrades gracefully elsewhere.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED") // purple: titles and report headers
	ColorMuted     = lipgloss.Color("#6B7280") // gray: secondary text
	ColorSuccess   = lipgloss.Color("#10B981") // green: passing checks
	ColorError     = lipgloss.Color("#EF4444") // red: failures and mismatches
	ColorWarning   = lipgloss.Color("#F59E0B") // amber: degraded but still running
	ColorHighlight = lipgloss.Color("#3B82F6") // blue: operation and engine names
	ColorVerbose   = lipgloss.Color("#9CA3AF") // light gray: --verbose detail
)

// Styles derived from the palette. Command code composes these rather
// than constructing lipgloss styles inline.
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CmdStyle      = lipgloss.NewStyle().Foreground(ColorHighlight)
	VerboseStyle  = lipgloss.NewStyle().Foreground(ColorVerbose)
)

// Icons rendered once and reused across command output.
var (
	successIcon = SuccessStyle.Render("✓")
	errorIcon   = ErrorStyle.Render("✗")
	infoIcon    = SubtitleStyle.Render("•")
)
