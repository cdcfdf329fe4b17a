// Package progressui plays the cinematic progress animation used by the
// hacking commands. Bar frames come from the pure render engine, so the
// animated output and the plain fallback can never disagree about geometry.
package progressui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui"
)

// barWidth is the cell count of the animated bar. Fits the Compact tier with
// room for the bracket and percentage annotation.
const barWidth = 40

// Options controls one playback run.
type Options struct {
	Label string        // e.g. "Scanning network"
	Steps int           // total ticks; each tick fills one increment
	Delay time.Duration // per-tick delay; 0 disables animation entirely
}

// PlayPlain writes the label and the completed bar with no animation.
// Used for piped output, --no-color, and notui builds.
func PlayPlain(w io.Writer, cfg render.Config, opts Options) error {
	bar, err := render.ProgressBar(opts.Steps, opts.Steps, barWidth, cfg.Palette)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n%s\n", header(opts.Label), bar)
	return nil
}

// header returns the "[LABEL]" line shown above the bar. Labels are shouted
// in uppercase regardless of how the caller wrote them.
func header(label string) string {
	banner := "[" + strings.ToUpper(label) + "]"
	if tui.IsPlainMode() {
		return banner
	}
	return tui.StyleTitle.Render(banner)
}
