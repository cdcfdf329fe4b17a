// Package game implements the fictional hacker console: the command
// interpreter, the session state it mutates, and the deterministic demo
// script. All output flows through the render engine so every mode of the
// program draws from the same palette and width decisions.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui/progressui"
)

// ErrExit is returned by Execute when the session should terminate.
var ErrExit = errors.New("session terminated")

// ErrUnknownCommand is returned for input that matches no command. Callers
// decide whether to reprompt or bail.
var ErrUnknownCommand = errors.New("command not recognized")

// Target is a network host surfaced by scan.
type Target struct {
	Name     string
	Security string
}

// systemStatus is the report backing the status command. Fields start at
// their boot values and are bumped by hack.
type systemStatus struct {
	Online             bool
	SecurityLevel      string
	Connections        int
	Firewall           bool
	Stealth            bool
	CompromisedSystems int
	Credits            int
}

// Options configures a Session.
type Options struct {
	// Out receives all command output. Defaults to os.Stdout.
	Out io.Writer
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64
	// Animate plays progress bars in real time on the terminal. When false
	// only the final bar frame is printed, which keeps output byte-stable.
	Animate bool
	// DelayScale multiplies every animation delay. Zero keeps the command
	// defaults; values below 1 speed playback up.
	DelayScale float64
}

// Session holds the mutable state of one console run.
type Session struct {
	cfg        render.Config
	out        io.Writer
	rng        *rand.Rand
	animate    bool
	delayScale float64

	discovered  []Target
	infiltrated map[string]struct{}
	status      systemStatus
}

// New builds a session with freshly booted status values.
func New(cfg render.Config, opts Options) *Session {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scale := opts.DelayScale
	if scale == 0 {
		scale = 1
	}
	return &Session{
		cfg:         cfg,
		out:         opts.Out,
		rng:         rand.New(rand.NewSource(seed)), //nolint:gosec // game flavor, not crypto
		animate:     opts.Animate,
		delayScale:  scale,
		infiltrated: make(map[string]struct{}),
		status: systemStatus{
			Online:        true,
			SecurityLevel: "MAXIMUM",
			Connections:   3,
			Firewall:      true,
			Stealth:       true,
		},
	}
}

// Parse splits one input line into a lowercased command and its arguments.
// A blank line yields an empty command.
func Parse(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// Execute dispatches one parsed command. It returns ErrExit when the user
// asked to leave and ErrUnknownCommand for unrecognized input; other errors
// indicate rendering failures.
func (s *Session) Execute(cmd string, args []string) error {
	switch cmd {
	case "":
		return nil
	case "help":
		return s.cmdHelp()
	case "scan":
		return s.cmdScan()
	case "decrypt":
		return s.cmdDecrypt()
	case "infiltrate":
		return s.cmdInfiltrate(firstArg(args))
	case "hack":
		return s.cmdHack()
	case "trace":
		return s.cmdTrace(firstArg(args))
	case "countertrace", "evade":
		return s.cmdCountertrace()
	case "status":
		return s.cmdStatus()
	case "clear":
		return s.cmdClear()
	case "exit":
		return s.cmdExit()
	default:
		fmt.Fprintln(s.out, "Command not recognized. Type 'help' for available commands.")
		return ErrUnknownCommand
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// play runs one progress sequence. Animation only happens when the session
// was built for it and output goes to the real terminal.
func (s *Session) play(label string, steps int, delay time.Duration) error {
	opts := progressui.Options{
		Label: label,
		Steps: steps,
		Delay: time.Duration(float64(delay) * s.delayScale),
	}
	if s.animate && s.out == os.Stdout {
		return progressui.Play(s.cfg, opts)
	}
	return progressui.PlayPlain(s.out, s.cfg, opts)
}

// printLines writes pre-rendered lines followed by newlines.
func (s *Session) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}
