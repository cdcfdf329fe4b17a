package tui

import (
	"strings"
	"testing"
)

// These tests modify global state (plainMode) and must not run in parallel.

func enablePlainMode(t *testing.T) {
	t.Helper()
	SetPlainMode(true)
	t.Cleanup(func() { SetPlainMode(false) })
}

func TestSetPlainMode_Overrides(t *testing.T) {
	SetPlainMode(true)
	if !IsPlainMode() {
		t.Error("IsPlainMode() should be true after SetPlainMode(true)")
	}

	SetPlainMode(false)
	if IsPlainMode() {
		t.Error("IsPlainMode() should be false after SetPlainMode(false)")
	}

	SetPlainMode(false)
}

func TestPrefix_PlainMode(t *testing.T) {
	enablePlainMode(t)

	got := Prefix()
	if got != "[mht]" {
		t.Errorf("Prefix() in plain mode = %q, want %q", got, "[mht]")
	}
}

func TestFaint_PlainMode(t *testing.T) {
	enablePlainMode(t)

	if got := Faint("hello"); got != "hello" {
		t.Errorf("Faint in plain mode = %q, want %q", got, "hello")
	}
}

func TestGradientText_PlainMode(t *testing.T) {
	enablePlainMode(t)

	got := GradientText("ACCESS GRANTED", "#00FF41", "#26A641")
	if got != "ACCESS GRANTED" {
		t.Errorf("GradientText in plain mode = %q, want unstyled input", got)
	}
}

func TestGradientText_Empty(t *testing.T) {
	enablePlainMode(t)

	if got := GradientText("", "#00FF41", "#26A641"); got != "" {
		t.Errorf("GradientText(\"\") = %q, want empty", got)
	}
}

func TestBrandGradient_PlainMode(t *testing.T) {
	enablePlainMode(t)

	if got := BrandGradient("MASTER HACKER", false); got != "MASTER HACKER" {
		t.Errorf("BrandGradient in plain mode = %q, want unstyled input", got)
	}
}

func TestSecurityStyle_MapsCorrectly(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"high", "error"},
		{"medium", "warning"},
		{"low", "success"},
		{"unknown", "muted"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got := SecurityStyle(tt.level)
			var expected string
			switch tt.want {
			case "error":
				expected = StyleError.Render("x")
			case "warning":
				expected = StyleWarning.Render("x")
			case "success":
				expected = StyleSuccess.Render("x")
			case "muted":
				expected = StyleMuted.Render("x")
			}
			if got.Render("x") != expected {
				t.Errorf("SecurityStyle(%q) returned wrong style", tt.level)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
	}{
		{"#00FF41", 0x00, 0xFF, 0x41},
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 0xFF, 0xFF, 0xFF},
	}
	for _, tt := range tests {
		r, g, b := HexToRGB(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HexToRGB(%s) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestInterpolateColor_Endpoints(t *testing.T) {
	if got := InterpolateColor("#000000", "#FFFFFF", 0); !strings.EqualFold(got, "#000000") {
		t.Errorf("t=0 = %s, want #000000", got)
	}
	if got := InterpolateColor("#000000", "#FFFFFF", 1); !strings.EqualFold(got, "#FFFFFF") {
		t.Errorf("t=1 = %s, want #FFFFFF", got)
	}
}

func TestGenerateGradient_Length(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		colors := GenerateGradient("#00FF41", "#26A641", n)
		if len(colors) != n {
			t.Errorf("GenerateGradient n=%d returned %d colors", n, len(colors))
		}
	}
}

func TestAlignColumns(t *testing.T) {
	enablePlainMode(t)

	rows := [][2]string{
		{"scan", "Scan for targets"},
		{"infiltrate <target>", "Infiltrate specified target"},
	}
	lines := AlignColumns(rows, "  ", 2, StyleMuted, StyleMuted)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Both values start at the same column.
	first := strings.Index(lines[0], "Scan")
	second := strings.Index(lines[1], "Infiltrate")
	if first != second {
		t.Errorf("values misaligned: %d vs %d\n%s\n%s", first, second, lines[0], lines[1])
	}
	if !strings.HasPrefix(lines[0], "  ") {
		t.Errorf("indent missing: %q", lines[0])
	}
}

func TestAlignColumns_Empty(t *testing.T) {
	if got := AlignColumns(nil, "", 2, StyleMuted, StyleMuted); got != nil {
		t.Errorf("AlignColumns(nil) = %v, want nil", got)
	}
}
