package tui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// plainMode disables all styling: no colors, no icons, no gradients.
// When enabled, output is clean plain text suitable for CI, piped output,
// or --no-color.
var (
	plainMode bool
	plainOnce sync.Once
	plainMu   sync.RWMutex
)

// initPlainMode auto-detects plain mode from environment on first call.
// Precedence: NO_COLOR > TTY detection > color profile.
func initPlainMode() {
	plainOnce.Do(func() {
		// NO_COLOR wins — https://no-color.org
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			plainMode = true
			return
		}
		// Not a terminal (piped, redirected) → plain mode
		if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd() fits in int on all supported platforms
			plainMode = true
			return
		}
		// Terminal with no color support → plain mode
		if termenv.EnvColorProfile() == termenv.Ascii {
			plainMode = true
		}
	})
}

// SetPlainMode explicitly enables or disables plain mode.
// Call this early (e.g. when parsing --no-color) before any styled output.
func SetPlainMode(plain bool) {
	plainMu.Lock()
	defer plainMu.Unlock()
	plainMode = plain
	// Mark as initialized so auto-detect doesn't override
	plainOnce.Do(func() {})
}

// IsPlainMode returns true if styling is disabled.
func IsPlainMode() bool {
	initPlainMode()
	plainMu.RLock()
	defer plainMu.RUnlock()
	return plainMode
}

// Color palette — phosphor greens with amber warnings. Adapts to OS theme.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0B7A2B", Dark: "#00FF41"} // Phosphor Green
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#116939", Dark: "#39D353"} // Leaf Green
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#0B7A2B", Dark: "#26A641"} // Deep Green
	ColorError   = lipgloss.AdaptiveColor{Light: "#B5382A", Dark: "#FF3E3E"} // Alarm Red
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD93D"} // Amber
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#1F6F5C", Dark: "#4AE8C4"} // Teal Glow
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6E7B6E"} // Faded Phosphor
)

// Reusable styles.
var (
	StyleTitle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleSubtitle = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleSuccess  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError    = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning  = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo     = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted    = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold     = lipgloss.NewStyle().Bold(true)
	StyleCommand  = lipgloss.NewStyle().Foreground(ColorPrimary)

	styleFaint = lipgloss.NewStyle().Faint(true)

	// Branded prefix: [mht] (unexported — use Prefix() instead)
	stylePrefix = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

// Prefix returns the branded [mht] prefix string.
func Prefix() string {
	if IsPlainMode() {
		return "[mht]"
	}
	return stylePrefix.Render("[mht]")
}

// Faint returns text with faint/dim formatting; unstyled in plain mode.
func Faint(text string) string {
	if IsPlainMode() {
		return text
	}
	return styleFaint.Render(text)
}

// brandGradientHex is the banner gradient (pale mint → phosphor → deep green).
var brandGradientHex = []string{
	"#D2FFE0", "#B4FFC8", "#96FFB0", "#78FF98", "#5AFF80",
	"#3CFF68", "#1EFF50", "#00FF41", "#00F03C", "#00E137",
	"#00D232", "#00C32D", "#26A641", "#1F9A3C", "#188E37",
	"#118232", "#0A762D", "#0B7A2B", "#0C6E29", "#0D6227",
}

// BrandGradient renders text with the phosphor-green banner gradient.
// In plain mode, returns the text unstyled.
func BrandGradient(text string, bold bool) string {
	if IsPlainMode() {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	width := len(runes)
	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		idx := i * (len(brandGradientHex) - 1) / max(width-1, 1)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(brandGradientHex[idx]))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// GradientText renders text with a smooth color gradient from one hex color
// to another. In plain mode, returns the text unstyled.
func GradientText(text, from, to string) string {
	if IsPlainMode() {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	colors := GenerateGradient(from, to, len(runes))
	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(string(r)))
	}
	return b.String()
}

// SecurityStyle returns the style for a target security level.
func SecurityStyle(level string) lipgloss.Style {
	switch level {
	case "high":
		return StyleError
	case "medium":
		return StyleWarning
	case "low":
		return StyleSuccess
	default:
		return StyleMuted
	}
}

// WindowTitle sets the terminal window title. No-op on redirected output.
func WindowTitle(title string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd() fits in int on all supported platforms
		return
	}
	termenv.NewOutput(os.Stdout).SetWindowTitle(title)
}

// ClearScreen erases the terminal display and homes the cursor.
// No-op on redirected output.
func ClearScreen() {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd() fits in int on all supported platforms
		return
	}
	out := termenv.NewOutput(os.Stdout)
	out.ClearScreen()
	out.MoveCursor(1, 1)
}
