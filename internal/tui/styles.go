package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorHeader = lipgloss.Color("12") // bright blue
	colorMuted  = lipgloss.Color("8")  // dim
	colorRight  = lipgloss.Color("2")  // green
	colorLeft   = lipgloss.Color("3")  // yellow
	colorError  = lipgloss.Color("1")  // red

	// Styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	SubheaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	groupStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Underline(true)

	trackStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Italic(true)
)

// FacingStyle colors a glyph by the way the sprite faces on screen.
func FacingStyle(facingLeft bool) lipgloss.Style {
	if facingLeft {
		return lipgloss.NewStyle().Foreground(colorLeft).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(colorRight).Bold(true)
}

// Glyph is the arrow drawn for a sprite facing the given way.
func Glyph(facingLeft bool) string {
	if facingLeft {
		return "<"
	}
	return ">"
}
