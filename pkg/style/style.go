// Package style defines the visual styling for saveli's terminal
// output. Colors are adaptive so they work on light and dark themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00A36C", Dark: "#4EE39D"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF6B6B"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Bold renders s in bold.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
