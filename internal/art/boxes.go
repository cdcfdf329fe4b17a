package art

import (
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/terminal"
)

// Version is the fictional terminal version shown in the main banner.
const Version = "2.0.7"

// blockWords emits the big-letter rows for each word, falling back to the
// plain word when the frame interior cannot fit the letterforms.
func blockWords(words []string, interior int, fill rune) []string {
	var rows []string
	for i, word := range words {
		if i > 0 {
			rows = append(rows, "")
		}
		if WordWidth(word) > interior {
			rows = append(rows, word)
			continue
		}
		rows = append(rows, Word(word, fill)...)
	}
	return rows
}

// box assembles title words plus caption lines into a framed banner,
// with breathing room scaled to the width tier.
func box(cfg render.Config, words []string, captions []string) ([]string, error) {
	pad := 1
	if cfg.Tier == terminal.TierCompact {
		pad = 0
	}

	var content []string
	for range pad {
		content = append(content, "")
	}
	content = append(content, blockWords(words, cfg.Width-2, cfg.Palette.Fill)...)
	content = append(content, "")
	content = append(content, captions...)
	for range pad {
		content = append(content, "")
	}
	return render.Frame(content, cfg.Width, cfg.Palette)
}

// MainBanner is the startup HACKER TERMINAL banner.
func MainBanner(cfg render.Config) ([]string, error) {
	return box(cfg,
		[]string{"HACKER", "TERMINAL"},
		[]string{"[ VERSION " + Version + " ]", "*** CLASSIFIED ACCESS ONLY ***"},
	)
}

// AccessGranted is the box shown after a successful infiltration or hack.
func AccessGranted(cfg render.Config) ([]string, error) {
	return box(cfg,
		[]string{"ACCESS", "GRANTED"},
		[]string{"*** ACCESS GRANTED ***"},
	)
}

// WarningBox is the intrusion warning shown before risky operations.
func WarningBox(cfg render.Config) ([]string, error) {
	return box(cfg,
		[]string{"WARNING"},
		[]string{
			"!!! WARNING !!!",
			"UNAUTHORIZED ACCESS DETECTED",
			"INITIATING SECURITY PROTOCOLS",
		},
	)
}
