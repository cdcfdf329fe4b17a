package progressui

import (
	"strings"
	"testing"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
)

func TestPlayPlain_FinalBarOnly(t *testing.T) {
	cfg := render.NewConfig(false, 80)
	var sb strings.Builder
	err := PlayPlain(&sb, cfg, Options{Label: "SCANNING NETWORK", Steps: 24})
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "[SCANNING NETWORK]") {
		t.Errorf("output missing label: %q", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("plain playback should show the completed bar: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("plain playback should be exactly two lines: %q", out)
	}
	if strings.ContainsRune(out, '.') {
		t.Errorf("completed ascii bar should have no empty cells: %q", out)
	}
}

func TestPlayPlain_UppercasesLabel(t *testing.T) {
	cfg := render.NewConfig(false, 80)
	var sb strings.Builder
	if err := PlayPlain(&sb, cfg, Options{Label: "Scanning network", Steps: 4}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "[SCANNING NETWORK]") {
		t.Errorf("label should be shouted in uppercase: %q", sb.String())
	}
	if strings.Contains(sb.String(), "Scanning network") {
		t.Errorf("mixed-case label leaked through: %q", sb.String())
	}
}

func TestHeader_UppercasesLabel(t *testing.T) {
	if got := header("access protocol"); !strings.Contains(got, "[ACCESS PROTOCOL]") {
		t.Errorf("header = %q, want uppercase label", got)
	}
}

func TestPlayPlain_UnicodePalette(t *testing.T) {
	cfg := render.NewConfig(true, 100)
	var sb strings.Builder
	if err := PlayPlain(&sb, cfg, Options{Label: "DECRYPTING", Steps: 10}); err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsRune(sb.String(), cfg.Palette.Fill) {
		t.Errorf("unicode bar should use palette fill glyph: %q", sb.String())
	}
}
