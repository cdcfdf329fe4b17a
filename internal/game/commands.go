package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/art"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui"
)

// scanTargets is the fixed network the scanner always finds.
var scanTargets = []Target{
	{Name: "MAINFRAME-7", Security: "low"},
	{Name: "QUANTUM-DB", Security: "high"},
	{Name: "SATELLITE-X", Security: "medium"},
}

// decryptedMessages is the pool the decrypt command draws from.
var decryptedMessages = []string{
	"THE CAKE IS A LIE",
	"TRUST NO ONE",
	"FOLLOW THE WHITE RABBIT",
	"THE MATRIX HAS YOU",
	"WAKE UP NEO",
	"I AM ROOT",
}

// traceLocation pins well-known targets to fixed coordinates so repeated
// traces agree with each other.
type traceLocation struct {
	Coords string
	ISP    string
}

var traceLocations = map[string]traceLocation{
	"QUANTUM-DB":   {"37.7749 deg N, 122.4194 deg W", "CyberCorp Industries"},
	"MAINFRAME-7":  {"40.7128 deg N, 74.0060 deg W", "MegaCorp Systems"},
	"SATELLITE-X":  {"51.5074 deg N, 0.1278 deg W", "SkyNet Communications"},
	"NEXUS-CORE":   {"35.6762 deg N, 139.6503 deg E", "Tech Dynamics"},
	"CRYPTO-VAULT": {"52.5200 deg N, 13.4050 deg E", "SecureMax GmbH"},
	"DATA-CENTER":  {"34.0522 deg N, 118.2437 deg W", "InfoTech Solutions"},
}

var fallbackISPs = []string{
	"CyberCorp Industries",
	"TechMax Solutions",
	"DataFlow Systems",
}

func (s *Session) cmdHelp() error {
	rows := [][2]string{
		{"help", "Show this help"},
		{"scan", "Scan for targets"},
		{"decrypt", "Decrypt intercepted data"},
		{"infiltrate <target>", "Infiltrate specified target (glob patterns allowed)"},
		{"hack", "Execute hack sequence"},
		{"trace <target>", "Trace target location"},
		{"countertrace|evade", "Counter enemy traces"},
		{"status", "Show system status"},
		{"clear", "Clear terminal"},
		{"exit", "Exit terminal"},
	}
	fmt.Fprintln(s.out, "Available commands:")
	s.printLines(tui.AlignColumns(rows, "  ", 4, tui.StyleCommand, tui.StyleMuted))
	return nil
}

func (s *Session) cmdScan() error {
	if err := s.play("Scanning network", 24, 120*time.Millisecond); err != nil {
		return err
	}
	s.discovered = append([]Target(nil), scanTargets...)
	fmt.Fprintf(s.out, "Found %d targets:\n", len(s.discovered))
	for _, t := range s.discovered {
		fmt.Fprintf(s.out, "- %s (security: %s)\n", t.Name, tui.SecurityStyle(t.Security).Render(t.Security))
	}
	return nil
}

func (s *Session) cmdDecrypt() error {
	if err := s.play("Decrypting data", 26, 100*time.Millisecond); err != nil {
		return err
	}
	message := decryptedMessages[s.rng.Intn(len(decryptedMessages))]
	fmt.Fprintf(s.out, "Decrypted message: %q\n", message)
	return nil
}

func (s *Session) cmdInfiltrate(pattern string) error {
	if pattern == "" {
		fmt.Fprintln(s.out, "Target required. Usage: infiltrate <target>")
		return nil
	}
	target, ok := s.matchTarget(pattern)
	if !ok {
		fmt.Fprintln(s.out, "Target not found. Run 'scan' first.")
		return nil
	}
	if err := s.showWarning(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Infiltrating %s...\n", target)
	if err := s.play("Bypassing security", 28, 150*time.Millisecond); err != nil {
		return err
	}
	s.infiltrated[target] = struct{}{}
	if err := s.showAccessGranted(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Root privileges obtained.")
	return nil
}

// matchTarget resolves a name or glob pattern against the discovered
// targets. The first discovered match wins, keeping scripted runs stable.
func (s *Session) matchTarget(pattern string) (string, bool) {
	pattern = strings.ToUpper(pattern)
	g, err := glob.Compile(pattern)
	if err != nil {
		// Treat an unparsable pattern as a literal name.
		for _, t := range s.discovered {
			if t.Name == pattern {
				return t.Name, true
			}
		}
		return "", false
	}
	for _, t := range s.discovered {
		if g.Match(t.Name) {
			return t.Name, true
		}
	}
	return "", false
}

func (s *Session) cmdHack() error {
	if err := s.showWarning(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Initiating hack sequence...")
	if err := s.play("Exploiting vulnerabilities", 30, 120*time.Millisecond); err != nil {
		return err
	}
	s.status.CompromisedSystems = 5
	s.status.Credits = 1337
	if err := s.showAccessGranted(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "HACK SUCCESSFUL")
	fmt.Fprintf(s.out, "Systems compromised: %d\n", s.status.CompromisedSystems)
	fmt.Fprintf(s.out, "Credits earned: %d\n", s.status.Credits)
	return nil
}

func (s *Session) cmdTrace(target string) error {
	if target == "" {
		fmt.Fprintln(s.out, "Target required. Usage: trace <target>")
		return nil
	}
	target = strings.ToUpper(target)
	// Patterns resolve against discovered targets; unknown names trace as-is.
	if name, ok := s.matchTarget(target); ok {
		target = name
	}
	fmt.Fprintf(s.out, "Tracing %s...\n", target)
	if err := s.play("Triangulating position", 25, 130*time.Millisecond); err != nil {
		return err
	}
	if loc, ok := traceLocations[target]; ok {
		fmt.Fprintf(s.out, "Location found: %s\n", loc.Coords)
		fmt.Fprintf(s.out, "ISP: %s\n", loc.ISP)
		return nil
	}
	lat := s.rng.Float64()*180 - 90
	lon := s.rng.Float64()*360 - 180
	fmt.Fprintf(s.out, "Location found: %.4f deg N, %.4f deg W\n", lat, lon)
	fmt.Fprintf(s.out, "ISP: %s\n", fallbackISPs[s.rng.Intn(len(fallbackISPs))])
	return nil
}

func (s *Session) cmdCountertrace() error {
	fmt.Fprintln(s.out, "Deploying countermeasures...")
	if err := s.play("Scrambling identity", 22, 110*time.Millisecond); err != nil {
		return err
	}
	if err := s.showAccessGranted(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Trace blocked. Identity scrambled.")
	return nil
}

func (s *Session) cmdStatus() error {
	onOff := func(b bool, yes, no string) string {
		if b {
			return yes
		}
		return no
	}
	rows := [][2]string{
		{"System Status", onOff(s.status.Online, "ONLINE", "OFFLINE")},
		{"Security Level", s.status.SecurityLevel},
		{"Active Connections", fmt.Sprintf("%d", s.status.Connections)},
		{"Firewall", onOff(s.status.Firewall, "ENABLED", "DISABLED")},
		{"Stealth Mode", onOff(s.status.Stealth, "ON", "OFF")},
		{"Compromised Systems", fmt.Sprintf("%d", s.status.CompromisedSystems)},
		{"Credits", fmt.Sprintf("%d", s.status.Credits)},
	}
	s.printLines(tui.AlignColumns(rows, "", 2, tui.StyleMuted, tui.StyleBold))
	return nil
}

func (s *Session) cmdClear() error {
	tui.ClearScreen()
	return nil
}

func (s *Session) cmdExit() error {
	fmt.Fprintln(s.out, "Connection terminated.")
	fmt.Fprintln(s.out, "Stay anonymous, hacker.")
	return ErrExit
}

func (s *Session) showWarning() error {
	lines, err := art.WarningBox(s.cfg)
	if err != nil {
		return err
	}
	s.printLines(lines)
	return nil
}

func (s *Session) showAccessGranted() error {
	lines, err := art.AccessGranted(s.cfg)
	if err != nil {
		return err
	}
	s.printLines(lines)
	return nil
}
