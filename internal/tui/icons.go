package tui

import "sync"

// Icons — each symbol is unique, universally recognized, and in widely-supported Unicode blocks.
// Color (green/red/amber) is the primary signal; icon shape reinforces meaning.
// When the resolved rendering decision forbids non-ASCII output the whole set
// is swapped for plain ASCII stand-ins via SetUnicodeSafe.
var (
	IconCheck   = "✔" // ✔ — heavy check mark (success)
	IconCross   = "✖" // ✖ — heavy multiplication X (error)
	IconWarning = "⚠" // ⚠ — warning sign (universal)
	IconInfo    = "ℹ" // ℹ — information source
	IconDot     = "●" // ● — filled circle (online/active)
	IconCircle  = "○" // ○ — hollow circle (offline/inactive)
	IconTarget  = "◎" // ◎ — bullseye (discovered target)
	IconBolt    = "⚡" // ⚡ — high voltage (hack sequence)
	IconShield  = "◆" // ◆ — diamond (firewall/stealth)
)

var iconMu sync.Mutex

// SetUnicodeSafe selects the icon set. Call once at startup after the Unicode
// decision is resolved; false swaps every icon for an ASCII stand-in so that
// --unicode off (or a non-UTF-8 terminal) never sees multi-byte glyphs even
// when color styling stays on.
func SetUnicodeSafe(safe bool) {
	iconMu.Lock()
	defer iconMu.Unlock()
	if safe {
		IconCheck, IconCross, IconWarning, IconInfo = "✔", "✖", "⚠", "ℹ"
		IconDot, IconCircle, IconTarget = "●", "○", "◎"
		IconBolt, IconShield = "⚡", "◆"
		return
	}
	IconCheck, IconCross, IconWarning, IconInfo = "OK", "X", "!", "i"
	IconDot, IconCircle, IconTarget = "*", "o", "@"
	IconBolt, IconShield = ">", "#"
}
