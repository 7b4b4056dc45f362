package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pad fills s with spaces up to width terminal cells.
func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
