// Package render composes width-correct terminal art: frames, centered
// banners, progress bars, and rules. Every emitted line is guaranteed to
// occupy exactly the requested number of display columns, whichever glyph
// set is active.
package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/terminal"
)

// Palette is the fixed glyph set used to draw frames, bars, and rules for one
// (unicode-safety, tier) combination. Immutable after registration.
type Palette struct {
	CornerTL   rune
	CornerTR   rune
	CornerBL   rune
	CornerBR   rune
	Horizontal rune
	Vertical   rune
	Fill       rune
	Empty      rune
	DoubleRule rune

	// Partials are fractional fill glyphs in increasing coverage order
	// (one-eighth through seven-eighths). Only the Wide Unicode palette
	// carries them; narrower layouts use whole cells.
	Partials []rune
}

// asciiPalette never varies by tier: seven-bit output renders identically
// everywhere a terminal exists.
var asciiPalette = Palette{
	CornerTL:   '+',
	CornerTR:   '+',
	CornerBL:   '+',
	CornerBR:   '+',
	Horizontal: '-',
	Vertical:   '|',
	Fill:       '#',
	Empty:      '.',
	DoubleRule: '=',
}

// unicodePalette uses double-line box drawing with solid/light-shade blocks.
var unicodePalette = Palette{
	CornerTL:   '╔',
	CornerTR:   '╗',
	CornerBL:   '╚',
	CornerBR:   '╝',
	Horizontal: '═',
	Vertical:   '║',
	Fill:       '█',
	Empty:      '░',
	DoubleRule: '─',
}

// unicodeWidePalette adds eighth-block partial fills for finer progress
// granularity at Wide tier.
var unicodeWidePalette = Palette{
	CornerTL:   '╔',
	CornerTR:   '╗',
	CornerBL:   '╚',
	CornerBR:   '╝',
	Horizontal: '═',
	Vertical:   '║',
	Fill:       '█',
	Empty:      '░',
	DoubleRule: '─',
	Partials:   []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'},
}

// Lookup returns the palette for a unicode-safety decision and layout tier.
// Pure table lookup.
func Lookup(unicodeSafe bool, tier terminal.Tier) Palette {
	if !unicodeSafe {
		return asciiPalette
	}
	if tier == terminal.TierWide {
		return unicodeWidePalette
	}
	return unicodePalette
}

// glyphs returns every rune the palette can emit.
func (p Palette) glyphs() []rune {
	gs := []rune{
		p.CornerTL, p.CornerTR, p.CornerBL, p.CornerBR,
		p.Horizontal, p.Vertical, p.Fill, p.Empty, p.DoubleRule,
	}
	return append(gs, p.Partials...)
}

// safeGlyph reports whether r belongs to the curated subset: printable
// ASCII, the box-drawing range, or the basic block-element range. Nothing
// outside it is ever registered, so display widths stay unambiguous.
func safeGlyph(r rune) bool {
	switch {
	case r >= 0x20 && r <= 0x7E:
		return true
	case r >= 0x2500 && r <= 0x257F: // box drawing
		return true
	case r >= 0x2580 && r <= 0x259F: // block elements
		return true
	}
	return false
}

// glyphWidth is the display-column table for registered glyphs, fixed at
// registration time. The engine consults it instead of assuming one rune
// equals one column.
var glyphWidth = map[rune]int{}

func init() {
	for _, p := range []Palette{asciiPalette, unicodePalette, unicodeWidePalette} {
		for _, g := range p.glyphs() {
			if !safeGlyph(g) {
				panic(fmt.Sprintf("render: glyph %q outside curated safe subset", g))
			}
			w := runewidth.RuneWidth(g)
			if w != 1 {
				panic(fmt.Sprintf("render: glyph %q has display width %d, want 1", g, w))
			}
			glyphWidth[g] = w
		}
	}
}
