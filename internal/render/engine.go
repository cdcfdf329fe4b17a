package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Invalid-input errors. These are for explicit caller-supplied values; the
// engine never guesses a substitute for them the way auto-detection does.
var (
	ErrInvalidDenominator = errors.New("render: progress denominator must be positive")
	ErrInvalidBarWidth    = errors.New("render: progress bar width must be positive")
	ErrFrameTooNarrow     = errors.New("render: frame width must be at least 4 columns")
)

// eighths is the denominator of the partial-fill granularity.
const eighths = 8

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Rule returns a section divider of exactly width columns.
func Rule(width int, p Palette) string {
	return repeatGlyph(p.Horizontal, width)
}

// HeavyRule returns a divider drawn with the palette's secondary rule glyph.
func HeavyRule(width int, p Palette) string {
	return repeatGlyph(p.DoubleRule, width)
}

// Banner centers text within exactly width columns, space padded on both
// sides. Text wider than the line is hard-truncated.
func Banner(text string, width int, p Palette) string {
	return center(truncate(text, width), width)
}

// Frame wraps content rows in a box: top rule, one framed line per row,
// bottom rule. Every returned line occupies exactly width columns; over-wide
// content is truncated rather than wrapped so frame height stays predictable.
func Frame(content []string, width int, p Palette) ([]string, error) {
	if width < 4 {
		return nil, ErrFrameTooNarrow
	}
	interior := width - glyphWidth[p.Vertical]*2

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, string(p.CornerTL)+repeatGlyph(p.Horizontal, interior)+string(p.CornerTR))
	for _, row := range content {
		padded := center(truncate(row, interior), interior)
		lines = append(lines, string(p.Vertical)+padded+string(p.Vertical))
	}
	lines = append(lines, string(p.CornerBL)+repeatGlyph(p.Horizontal, interior)+string(p.CornerBR))
	return lines, nil
}

// ProgressBar renders a bracketed bar of barWidth cells with a percentage
// annotation, e.g. "[████████░░]  80%". The filled-cell count is
// round(barWidth × numerator / denominator), clamped to [0, barWidth].
// Palettes with partial-fill glyphs render the fractional remainder as a
// single eighth-block cell.
func ProgressBar(numerator, denominator, barWidth int, p Palette) (string, error) {
	if denominator <= 0 {
		return "", ErrInvalidDenominator
	}
	if barWidth <= 0 {
		return "", ErrInvalidBarWidth
	}
	n := numerator
	if n < 0 {
		n = 0
	}
	if n > denominator {
		n = denominator
	}

	var cells string
	if len(p.Partials) > 0 {
		cells = partialCells(n, denominator, barWidth, p)
	} else {
		filled := (barWidth*n*2 + denominator) / (denominator * 2) // round half up
		cells = repeatGlyph(p.Fill, filled) + repeatGlyph(p.Empty, barWidth-filled)
	}

	percent := (100*n*2 + denominator) / (denominator * 2)
	return fmt.Sprintf("[%s] %3d%%", cells, percent), nil
}

// partialCells builds the bar body at eighth-cell resolution.
func partialCells(n, d, barWidth int, p Palette) string {
	units := (barWidth*eighths*n*2 + d) / (d * 2)
	full := units / eighths
	part := units % eighths

	var b strings.Builder
	b.WriteString(repeatGlyph(p.Fill, full))
	empty := barWidth - full
	if part > 0 {
		b.WriteRune(p.Partials[part-1])
		empty--
	}
	b.WriteString(repeatGlyph(p.Empty, empty))
	return b.String()
}

// repeatGlyph emits g enough times to cover exactly width columns.
func repeatGlyph(g rune, width int) string {
	if width <= 0 {
		return ""
	}
	w := glyphWidth[g]
	if w == 0 {
		w = runewidth.RuneWidth(g)
	}
	return strings.Repeat(string(g), width/w)
}

// truncate hard-cuts s to at most max display columns.
func truncate(s string, max int) string {
	if DisplayWidth(s) <= max {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > max {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}

// center pads s with spaces to exactly width columns, text biased left on
// odd remainders.
func center(s string, width int) string {
	rem := width - DisplayWidth(s)
	if rem <= 0 {
		return s
	}
	left := rem / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", rem-left)
}
