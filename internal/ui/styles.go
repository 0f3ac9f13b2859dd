package ui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#64ffda")
	textColor   = lipgloss.Color("#e5e7eb")
	mutedColor  = lipgloss.Color("#9ca3af")
	ruleColor   = lipgloss.Color("#374151")
)

// Styles groups every lipgloss style the renderer uses.
type Styles struct {
	Accent    lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Title     lipgloss.Style
	Heading   lipgloss.Style
	Rule      lipgloss.Style
	NavActive lipgloss.Style
	NavIdle   lipgloss.Style
	Header    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Card      lipgloss.Style
}

// DefaultStyles mirrors the navy and mint palette of the web page.
func DefaultStyles() Styles {
	return Styles{
		Accent:    lipgloss.NewStyle().Foreground(accentColor),
		Text:      lipgloss.NewStyle().Foreground(textColor),
		Muted:     lipgloss.NewStyle().Foreground(mutedColor),
		Title:     lipgloss.NewStyle().Foreground(textColor).Bold(true),
		Heading:   lipgloss.NewStyle().Foreground(textColor).Bold(true),
		Rule:      lipgloss.NewStyle().Foreground(ruleColor),
		NavActive: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		NavIdle:   lipgloss.NewStyle().Foreground(textColor),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ruleColor),
		TabActive: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		TabIdle:   lipgloss.NewStyle().Foreground(mutedColor),
		Card:      lipgloss.NewStyle().PaddingLeft(2),
	}
}

// PlainStyles renders without colors or borders, for piping to files.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Accent:    plain,
		Text:      plain,
		Muted:     plain,
		Title:     plain,
		Heading:   plain,
		Rule:      plain,
		NavActive: plain,
		NavIdle:   plain,
		Header:    plain,
		TabActive: plain,
		TabIdle:   plain,
		Card:      lipgloss.NewStyle().PaddingLeft(2),
	}
}
