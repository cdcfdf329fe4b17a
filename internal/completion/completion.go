// Package completion provides CLI tab-completion for mht.
//
// The binary itself handles completions: when invoked with COMP_LINE set
// (by the shell), it outputs matching completions and exits.
// Works across bash, zsh, and fish with a one-time install.
//
// This package has no TUI dependency — it compiles in both normal and notui
// builds. User-facing output (styled messages) is handled by the caller in
// main.go, which can use TUI when available.
package completion

import (
	"os"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/install"
	"github.com/posener/complete/v2/predict"
)

// consoleCommands are the in-session commands, also accepted by `mht run`.
var consoleCommands = predict.Set{
	"help", "scan", "decrypt", "infiltrate", "hack",
	"trace", "countertrace", "evade", "status", "clear", "exit",
}

// renderFlags are shared by every subcommand that draws to the terminal.
var renderFlags = map[string]complete.Predictor{
	"unicode":   predict.Set{"auto", "on", "off"},
	"width":     predict.Set{"auto", "compact", "standard", "wide"},
	"config":    predict.Files("*.yaml"),
	"no-color":  predict.Nothing,
	"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
}

// command defines the full mht CLI completion tree.
var command = &complete.Command{
	Flags: renderFlags,
	Sub: map[string]*complete.Command{
		"run":         {Flags: renderFlags, Args: consoleCommands},
		"demo":        {Flags: renderFlags},
		"interactive": {Flags: renderFlags},
		"probe":       {Flags: renderFlags},
		"version":     {},
		"help":        {},
		"completion":  {Flags: map[string]complete.Predictor{"install": predict.Nothing, "uninstall": predict.Nothing}},
	},
}

// Run checks if the binary was invoked for shell completion.
// If COMP_LINE is set, it outputs completions and exits (never returns).
// Otherwise it returns false and the program continues normally.
func Run() bool {
	if os.Getenv("COMP_LINE") != "" || os.Getenv("COMP_INSTALL") != "" || os.Getenv("COMP_UNINSTALL") != "" {
		command.Complete("mht")
		return true
	}
	return false
}

// Install sets up shell completion for the detected shells.
// Returns nil on success. The caller handles user-facing output.
func Install() error {
	return install.Install("mht")
}

// Uninstall removes shell completion for the detected shells.
// Returns nil on success. The caller handles user-facing output.
func Uninstall() error {
	return install.Uninstall("mht")
}

// IsInstalled reports whether shell completion is already set up.
func IsInstalled() bool {
	return install.IsInstalled("mht")
}
