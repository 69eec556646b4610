package main

import "github.com/charmbracelet/lipgloss"

var (
	colorHeader = lipgloss.Color("12") // bright blue
	colorMuted  = lipgloss.Color("8")  // dim
	colorLeft   = lipgloss.Color("3")  // yellow
	colorRight  = lipgloss.Color("2")  // green

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// directionStyle colors the facing column.
func directionStyle(facesLeft bool) lipgloss.Style {
	if facesLeft {
		return cellStyle.Foreground(colorLeft)
	}
	return cellStyle.Foreground(colorRight)
}
