// Package terminal detects what the controlling terminal can safely display:
// whether Unicode box-drawing and block glyphs will render at their expected
// width, and how many columns are available for layout.
//
// Detection reconciles three unreliable signals (locale environment
// variables, the TERM identifier, and an optional live cursor-position probe)
// into a single decision. ASCII output is always a fully functional fallback,
// so every inconclusive signal degrades silently toward it.
package terminal

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// localeVars are the environment variables consulted for UTF-8 hints,
// in glibc precedence order.
var localeVars = [3]string{"LC_ALL", "LC_CTYPE", "LANG"}

// Signals is an immutable snapshot of the environment facts that feed
// Unicode detection. Captured once at startup and never mutated.
type Signals struct {
	Locale map[string]string // LC_ALL, LC_CTYPE, LANG (absent vars are "")
	Term   string            // raw TERM value
	IsTTY  bool              // stdout is attached to an interactive terminal
}

// EnvFunc is the signature for environment variable lookup (matches os.Getenv).
type EnvFunc func(string) string

var (
	cachedSignals Signals
	captureOnce   sync.Once
)

// Capture reads the locale and terminal-type environment and checks whether
// stdout is a terminal. Result is cached after first call.
func Capture() Signals {
	captureOnce.Do(func() {
		cachedSignals = CaptureWith(os.Getenv, term.IsTerminal(int(os.Stdout.Fd()))) //nolint:gosec // Fd() fits in int on all supported platforms
	})
	return cachedSignals
}

// CaptureWith builds a snapshot from a custom env lookup and TTY flag.
// Not cached — used for testing.
func CaptureWith(getenv EnvFunc, isTTY bool) Signals {
	locale := make(map[string]string, len(localeVars))
	for _, v := range localeVars {
		locale[v] = getenv(v)
	}
	return Signals{
		Locale: locale,
		Term:   getenv("TERM"),
		IsTTY:  isTTY,
	}
}
