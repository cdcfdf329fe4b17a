package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignColumns renders rows of two-column data with the left column padded
// to the widest entry. Each row is [label, value]; styleLeft and styleRight
// are applied to the raw text of each column. indent is prepended to every
// line and gap is the number of spaces between columns. Returns one string
// per row, ready to print.
func AlignColumns(rows [][2]string, indent string, gap int, styleLeft, styleRight lipgloss.Style) []string {
	if len(rows) == 0 {
		return nil
	}

	// Widest left column by visual width, not byte length.
	maxWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > maxWidth {
			maxWidth = w
		}
	}

	gapStr := strings.Repeat(" ", gap)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		// Pad the styled left column so values align; lipgloss.Width
		// handles ANSI escape codes correctly.
		pad := strings.Repeat(" ", maxWidth-lipgloss.Width(row[0]))
		lines = append(lines, indent+styleLeft.Render(row[0])+pad+gapStr+styleRight.Render(row[1]))
	}
	return lines
}
