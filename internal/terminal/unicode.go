package terminal

import (
	"fmt"
	"strings"
)

// UnicodeMode is the user's declared glyph preference. Auto triggers
// detection; On and Off are unconditional overrides that skip all probing.
type UnicodeMode int

const (
	UnicodeAuto UnicodeMode = iota
	UnicodeOn
	UnicodeOff
)

// ParseUnicodeMode converts a CLI flag value to a UnicodeMode.
func ParseUnicodeMode(s string) (UnicodeMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return UnicodeAuto, nil
	case "on":
		return UnicodeOn, nil
	case "off":
		return UnicodeOff, nil
	}
	return 0, fmt.Errorf("unknown unicode mode %q (valid: auto, on, off)", s)
}

func (m UnicodeMode) String() string {
	switch m {
	case UnicodeOn:
		return "on"
	case UnicodeOff:
		return "off"
	default:
		return "auto"
	}
}

// unicodeTerms are TERM values known to render box-drawing glyphs correctly
// even without a UTF-8 locale hint. Bare legacy names (xterm, vt100, screen)
// and "dumb" are deliberately absent.
var unicodeTerms = map[string]bool{
	"xterm-kitty": true,
	"foot":        true,
	"wezterm":     true,
	"alacritty":   true,
}

// localeSuggestsUTF8 reports whether any locale variable names a UTF-8
// codeset. Comparison is case-insensitive and accepts both spellings.
func localeSuggestsUTF8(s Signals) bool {
	for _, v := range localeVars {
		val := strings.ToLower(s.Locale[v])
		if strings.Contains(val, "utf-8") || strings.Contains(val, "utf8") {
			return true
		}
	}
	return false
}

// termSuggestsUnicode reports whether the TERM identifier is on the
// allow-list of Unicode-capable terminals.
func termSuggestsUnicode(s Signals) bool {
	t := strings.ToLower(s.Term)
	if t == "" || t == "dumb" {
		return false
	}
	return strings.HasSuffix(t, "-256color") || unicodeTerms[t]
}

// Hints summarizes the heuristic inputs to the Unicode decision, for
// diagnostics output.
type Hints struct {
	LocaleUTF8  bool
	TermUnicode bool
}

// HeuristicHints reports how each detection heuristic voted.
func HeuristicHints(sig Signals) Hints {
	return Hints{
		LocaleUTF8:  localeSuggestsUTF8(sig),
		TermUnicode: termSuggestsUnicode(sig),
	}
}

// ResolveUnicode decides whether Unicode glyphs are safe to emit.
//
// On and Off win unconditionally. In Auto mode the decision is true when the
// locale or the terminal type vouches for Unicode; a successful live probe is
// accepted as an additional positive signal, but a failed or absent probe
// never vetoes a locale/TERM pass. Redirected output does not force ASCII:
// a pipe inherits the capabilities the environment describes.
func ResolveUnicode(mode UnicodeMode, sig Signals, probe *ProbeResult) bool {
	switch mode {
	case UnicodeOn:
		return true
	case UnicodeOff:
		return false
	}
	if localeSuggestsUTF8(sig) || termSuggestsUnicode(sig) {
		return true
	}
	return probe != nil && probe.WidthOK
}
