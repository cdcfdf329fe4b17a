// Package art builds the big-letter banner boxes (title, access granted,
// warning) from a small block font, composed through the render engine so
// every line honors the active palette and width tier.
package art

import (
	"strings"
)

// fontHeight is the row count of every letterform.
const fontHeight = 5

// letterGap is the blank columns between adjacent letters.
const letterGap = 2

// letterforms holds the block font, '#' marking filled cells. Only the
// letters the banners need are defined; anything else renders as a gap.
var letterforms = map[rune][]string{
	'A': {
		" ### ",
		"#   #",
		"#####",
		"#   #",
		"#   #",
	},
	'C': {
		" ####",
		"#    ",
		"#    ",
		"#    ",
		" ####",
	},
	'D': {
		"#### ",
		"#   #",
		"#   #",
		"#   #",
		"#### ",
	},
	'E': {
		"#####",
		"#    ",
		"#### ",
		"#    ",
		"#####",
	},
	'G': {
		" ####",
		"#    ",
		"# ###",
		"#   #",
		" ### ",
	},
	'H': {
		"#   #",
		"#   #",
		"#####",
		"#   #",
		"#   #",
	},
	'I': {
		"###",
		" # ",
		" # ",
		" # ",
		"###",
	},
	'K': {
		"#  # ",
		"# #  ",
		"##   ",
		"# #  ",
		"#  # ",
	},
	'L': {
		"#    ",
		"#    ",
		"#    ",
		"#    ",
		"#####",
	},
	'M': {
		"#   #",
		"## ##",
		"# # #",
		"#   #",
		"#   #",
	},
	'N': {
		"#   #",
		"##  #",
		"# # #",
		"#  ##",
		"#   #",
	},
	'R': {
		"#### ",
		"#   #",
		"#### ",
		"# #  ",
		"#  # ",
	},
	'S': {
		" ####",
		"#    ",
		" ### ",
		"    #",
		"#### ",
	},
	'T': {
		"#####",
		"  #  ",
		"  #  ",
		"  #  ",
		"  #  ",
	},
	'W': {
		"#   #",
		"#   #",
		"# # #",
		"## ##",
		"#   #",
	},
	' ': {
		"   ",
		"   ",
		"   ",
		"   ",
		"   ",
	},
}

// Word renders text as fontHeight rows of block letters, with '#' cells
// replaced by the given fill glyph. Undefined runes render as word gaps.
func Word(text string, fill rune) []string {
	rows := make([]strings.Builder, fontHeight)
	first := true
	for _, r := range strings.ToUpper(text) {
		form, ok := letterforms[r]
		if !ok {
			form = letterforms[' ']
		}
		for i := range rows {
			if !first {
				rows[i].WriteString(strings.Repeat(" ", letterGap))
			}
			rows[i].WriteString(form[i])
		}
		first = false
	}

	out := make([]string, fontHeight)
	for i := range rows {
		out[i] = strings.ReplaceAll(rows[i].String(), "#", string(fill))
	}
	return out
}

// WordWidth returns the display columns Word(text, …) will occupy. All font
// fill glyphs are single column, so the '#' template width is authoritative.
func WordWidth(text string) int {
	w := 0
	first := true
	for _, r := range strings.ToUpper(text) {
		form, ok := letterforms[r]
		if !ok {
			form = letterforms[' ']
		}
		if !first {
			w += letterGap
		}
		w += len(form[0])
		first = false
	}
	return w
}
