package render

import (
	"fmt"
	"os"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/terminal"
)

// Config bundles the one-time detection results every rendering call needs:
// the Unicode decision, the effective width, its tier, and the selected
// palette. Built once at startup and passed explicitly — no ambient lookup.
type Config struct {
	UnicodeSafe bool
	Width       int
	Tier        terminal.Tier
	Palette     Palette
}

// Initialize resolves the Unicode and width decisions and selects a palette.
//
// widthOverride of 0 means detect from the terminal; a negative value is a
// configuration error. The live probe runs only in Auto mode, only on an
// interactive terminal, and only when the locale/TERM heuristics came up
// empty — it is a positive signal of last resort, never a veto.
func Initialize(mode terminal.UnicodeMode, widthOverride int) (Config, error) {
	sig := terminal.Capture()

	var probe *terminal.ProbeResult
	if mode == terminal.UnicodeAuto && sig.IsTTY && !terminal.ResolveUnicode(mode, sig, nil) {
		probe = terminal.Probe(os.Stdin, os.Stdout)
	}
	unicodeSafe := terminal.ResolveUnicode(mode, sig, probe)

	width, tier, err := terminal.ResolveWidth(widthOverride)
	if err != nil {
		return Config{}, err
	}

	return Config{
		UnicodeSafe: unicodeSafe,
		Width:       width,
		Tier:        tier,
		Palette:     Lookup(unicodeSafe, tier),
	}, nil
}

// NewConfig builds a Config from already-resolved values. Used by tests and
// by callers that performed detection separately.
func NewConfig(unicodeSafe bool, width int) Config {
	tier := terminal.ClassifyWidth(width)
	return Config{
		UnicodeSafe: unicodeSafe,
		Width:       width,
		Tier:        tier,
		Palette:     Lookup(unicodeSafe, tier),
	}
}

// Kind selects what a Request renders.
type Kind int

const (
	KindFrame Kind = iota
	KindBanner
	KindProgress
	KindRule
)

// Request describes one render call. Ephemeral; constructed per call.
type Request struct {
	Kind Kind

	Rows []string // frame content
	Text string   // banner text

	Numerator   int
	Denominator int
	BarWidth    int
}

// Render produces the lines for a request. Pure given the config; callers
// print the returned lines verbatim.
func Render(cfg Config, req Request) ([]string, error) {
	switch req.Kind {
	case KindFrame:
		return Frame(req.Rows, cfg.Width, cfg.Palette)
	case KindBanner:
		return []string{Banner(req.Text, cfg.Width, cfg.Palette)}, nil
	case KindProgress:
		bar, err := ProgressBar(req.Numerator, req.Denominator, req.BarWidth, cfg.Palette)
		if err != nil {
			return nil, err
		}
		return []string{bar}, nil
	case KindRule:
		return []string{Rule(cfg.Width, cfg.Palette)}, nil
	}
	return nil, fmt.Errorf("render: unknown request kind %d", req.Kind)
}
