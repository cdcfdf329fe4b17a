package terminal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Tier is a discrete layout class selected by column count. The three tiers
// partition the positive integers: Compact ≤ 62, Standard 63–99, Wide ≥ 100.
type Tier int

const (
	TierCompact Tier = iota
	TierStandard
	TierWide
)

func (t Tier) String() string {
	switch t {
	case TierCompact:
		return "compact"
	case TierWide:
		return "wide"
	default:
		return "standard"
	}
}

// Tier boundaries and width defaults.
const (
	compactMax  = 62 // widest Compact terminal
	standardMax = 99 // widest Standard terminal

	// DefaultWidth is used when the terminal size cannot be determined.
	DefaultWidth = 80
	// MinWidth is the floor below which layouts degenerate; detected and
	// forced widths alike are raised to it.
	MinWidth = 20
)

// Representative column counts used when a tier is forced by name
// rather than measured.
const (
	compactWidth  = 60
	standardWidth = DefaultWidth
	wideWidth     = 120
)

// ClassifyWidth maps a column count to its layout tier.
func ClassifyWidth(width int) Tier {
	switch {
	case width <= compactMax:
		return TierCompact
	case width <= standardMax:
		return TierStandard
	default:
		return TierWide
	}
}

// ParseWidthMode converts the CLI width flag to a column override.
// "auto" (or empty) returns 0, meaning detect from the terminal. Tier names
// map to representative widths; anything else must be a positive integer.
func ParseWidthMode(s string) (int, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return 0, nil
	case "compact":
		return compactWidth, nil
	case "standard":
		return standardWidth, nil
	case "wide":
		return wideWidth, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q (valid: auto, compact, standard, wide, or a column count)", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("width must be positive, got %d", n)
	}
	return n, nil
}

// ResolveWidth determines the effective column count and tier.
//
// A non-zero override is used directly (negative values are a caller error).
// Otherwise the controlling terminal is queried, with the COLUMNS variable
// and finally DefaultWidth as fallbacks. The result is clamped to MinWidth
// before tier classification. Detection never fails; only an explicit
// invalid override is reported.
func ResolveWidth(override int) (int, Tier, error) {
	if override < 0 {
		return 0, 0, fmt.Errorf("width override must be positive, got %d", override)
	}
	width := override
	if width == 0 {
		width = detectWidth(os.Getenv)
	}
	if width < MinWidth {
		width = MinWidth
	}
	return width, ClassifyWidth(width), nil
}

// detectWidth queries the terminal size, degrading through COLUMNS to the
// fixed default. Unavailable size is silent; ASCII-era 80 columns always works.
func detectWidth(getenv EnvFunc) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 { //nolint:gosec // Fd() fits in int on all supported platforms
		return w
	}
	if cols := getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return DefaultWidth
}
