//go:build notui

package progressui

import (
	"os"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
)

// Play prints the completed bar when the TUI is compiled out.
func Play(cfg render.Config, opts Options) error {
	if opts.Steps <= 0 {
		return render.ErrInvalidDenominator
	}
	return PlayPlain(os.Stdout, cfg, opts)
}
