package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/art"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/completion"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/config"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/game"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/logger"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/terminal"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui/spinner"
)

var log = logger.New("main")

func main() {
	// Shell completion callbacks never reach normal dispatch.
	if completion.Run() {
		return
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "run":
			runCommand(os.Args[2:])
		case "demo":
			runDemo(os.Args[2:])
		case "interactive":
			runInteractive(os.Args[2:])
		case "probe":
			runProbe(os.Args[2:])
		case "completion":
			runCompletion(os.Args[2:])
		case "help", "-h", "--help":
			printUsage()
		case "version", "-v", "--version":
			fmt.Printf("mht version %s\n", art.Version)
		default:
			// Shorthand: `mht scan` behaves like `mht run scan`.
			runCommand(os.Args[1:])
		}
		return
	}

	// Bare invocation: banner plus pointers at the real entry points.
	rc, _ := mustSetup(&cliOptions{})
	showBanner(rc)
	fmt.Println()
	fmt.Println("Use 'mht help' for options.")
	fmt.Println("Examples:")
	fmt.Println("  mht run scan          Run a single command")
	fmt.Println("  mht interactive       Interactive mode")
	fmt.Println("  mht demo              Deterministic demo")
}

// cliOptions are the flags shared by every drawing subcommand. Empty string
// and false mean "not set": the config file and environment keep their say.
type cliOptions struct {
	configPath string
	unicode    string
	width      string
	noColor    bool
	logLevel   string
}

func addRenderFlags(fs *flag.FlagSet) *cliOptions {
	o := &cliOptions{}
	fs.StringVar(&o.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&o.unicode, "unicode", "", "Unicode art mode: auto, on, off")
	fs.StringVar(&o.width, "width", "", "Width: auto, compact, standard, wide, or a column count")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	return o
}

// setup loads configuration, applies flag overrides, configures logging and
// styling, then resolves the terminal capabilities into a render config.
func setup(opts *cliOptions) (render.Config, *config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	app, err := config.Load(path)
	if err != nil {
		return render.Config{}, nil, err
	}

	// CLI flags win over environment and file.
	if opts.unicode != "" {
		app.Terminal.Unicode = opts.unicode
	}
	if opts.width != "" {
		app.Terminal.Width = opts.width
	}
	if opts.noColor {
		app.Terminal.NoColor = true
	}
	if opts.logLevel != "" {
		app.Logging.Level = opts.logLevel
	}
	if err := app.Validate(); err != nil {
		return render.Config{}, nil, err
	}

	logger.SetGlobalLevelFromString(app.Logging.Level)
	if app.Terminal.NoColor {
		logger.SetColored(false)
		tui.SetPlainMode(true)
	}

	mode, _ := terminal.ParseUnicodeMode(app.Terminal.Unicode)
	widthOverride, _ := terminal.ParseWidthMode(app.Terminal.Width)
	rc, err := render.Initialize(mode, widthOverride)
	if err != nil {
		return render.Config{}, nil, err
	}
	tui.SetUnicodeSafe(rc.UnicodeSafe)
	log.Debug("resolved unicode=%v width=%d tier=%s", rc.UnicodeSafe, rc.Width, rc.Tier)
	return rc, app, nil
}

func mustSetup(opts *cliOptions) (render.Config, *config.Config) {
	rc, app, err := setup(opts)
	if err != nil {
		tui.PrintError(err.Error())
		os.Exit(1)
	}
	return rc, app
}

func playbackOptions(app *config.Config) game.Options {
	return game.Options{
		Animate:    app.Playback.Animate,
		DelayScale: app.Playback.DelayScale,
	}
}

func showBanner(rc render.Config) {
	lines, err := art.MainBanner(rc)
	if err != nil {
		tui.PrintError(err.Error())
		os.Exit(1)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// runCommand handles `mht run <command...>` and the bare shorthand.
func runCommand(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	opts := addRenderFlags(fs)
	_ = fs.Parse(args)
	rc, app := mustSetup(opts)

	rest := fs.Args()
	if len(rest) == 0 {
		showBanner(rc)
		fmt.Println("Empty command. Entering interactive mode...")
		interactiveLoop(rc, app)
		return
	}

	showBanner(rc)
	cmd, cmdArgs := game.Parse(strings.Join(rest, " "))
	gopts := playbackOptions(app)
	gopts.Seed = 1337 // single-command output stays reproducible
	s := game.New(rc, gopts)
	switch err := s.Execute(cmd, cmdArgs); {
	case err == nil, errors.Is(err, game.ErrExit):
	case errors.Is(err, game.ErrUnknownCommand):
		fmt.Println("Entering interactive mode...")
		interactiveLoop(rc, app)
	default:
		log.Error("command failed: %v", err)
		os.Exit(1)
	}
}

// runDemo handles the demo subcommand.
func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	opts := addRenderFlags(fs)
	_ = fs.Parse(args)
	rc, _ := mustSetup(opts)

	if err := game.RunDemo(rc, os.Stdout); err != nil {
		log.Error("demo failed: %v", err)
		os.Exit(1)
	}
}

// runInteractive handles the interactive subcommand.
func runInteractive(args []string) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	opts := addRenderFlags(fs)
	_ = fs.Parse(args)
	rc, app := mustSetup(opts)
	interactiveLoop(rc, app)
}

func interactiveLoop(rc render.Config, app *config.Config) {
	if app.Playback.Animate {
		delay := time.Duration(600 * app.Playback.DelayScale * float64(time.Millisecond))
		_ = spinner.RunWithSpinner("Establishing encrypted uplink", "Uplink established", func() error {
			time.Sleep(delay)
			return nil
		})
	}
	if err := game.Interactive(rc, os.Stdin, playbackOptions(app)); err != nil {
		log.Error("session failed: %v", err)
		os.Exit(1)
	}
}

// runProbe handles the probe subcommand: a diagnostic dump of every signal
// feeding the capability decision, then the decision itself.
func runProbe(args []string) {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	opts := addRenderFlags(fs)
	_ = fs.Parse(args)
	_, app := mustSetup(opts)

	sig := terminal.Capture()
	hints := terminal.HeuristicHints(sig)

	var probe *terminal.ProbeResult
	probeVerdict := "skipped (not a terminal)"
	if sig.IsTTY {
		probe = terminal.Probe(os.Stdin, os.Stdout)
		switch {
		case probe == nil:
			probeVerdict = "inconclusive"
		case probe.WidthOK:
			probeVerdict = "passed (glyph is single width)"
		default:
			probeVerdict = fmt.Sprintf("failed (cursor at column %d)", probe.Columns)
		}
	}

	mode, _ := terminal.ParseUnicodeMode(app.Terminal.Unicode)
	widthOverride, _ := terminal.ParseWidthMode(app.Terminal.Width)
	unicodeSafe := terminal.ResolveUnicode(mode, sig, probe)
	width, tier, err := terminal.ResolveWidth(widthOverride)
	if err != nil {
		tui.PrintError(err.Error())
		os.Exit(1)
	}

	unset := func(v string) string {
		if v == "" {
			return "(unset)"
		}
		return v
	}
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	fmt.Println("Capability signals:")
	rows := [][2]string{
		{"LC_ALL", unset(sig.Locale["LC_ALL"])},
		{"LC_CTYPE", unset(sig.Locale["LC_CTYPE"])},
		{"LANG", unset(sig.Locale["LANG"])},
		{"TERM", unset(sig.Term)},
		{"stdout is a TTY", yesNo(sig.IsTTY)},
	}
	printRows(rows)

	fmt.Println()
	fmt.Println("Heuristics:")
	printRows([][2]string{
		{"locale names UTF-8", yesNo(hints.LocaleUTF8)},
		{"TERM vouches for Unicode", yesNo(hints.TermUnicode)},
		{"cursor probe", probeVerdict},
	})

	fmt.Println()
	fmt.Println("Decision:")
	printRows([][2]string{
		{"unicode mode", mode.String()},
		{"unicode safe", yesNo(unicodeSafe)},
		{"width", fmt.Sprintf("%d columns (%s)", width, tier)},
	})
}

func printRows(rows [][2]string) {
	for _, line := range tui.AlignColumns(rows, "  ", 2, tui.StyleMuted, tui.StyleBold) {
		fmt.Println(line)
	}
}

// runCompletion handles the completion subcommand.
func runCompletion(args []string) {
	compFlags := flag.NewFlagSet("completion", flag.ExitOnError)
	installFlag := compFlags.Bool("install", false, "Install shell completion")
	uninstallFlag := compFlags.Bool("uninstall", false, "Uninstall shell completion")
	_ = compFlags.Parse(args)

	switch {
	case *installFlag:
		if completion.IsInstalled() {
			tui.PrintInfo("Shell completion is already installed.")
			return
		}
		if err := completion.Install(); err != nil {
			tui.PrintError(fmt.Sprintf("Failed to install completion: %v", err))
			os.Exit(1)
		}
		tui.PrintSuccess("Shell completion installed. Restart your shell to activate.")
	case *uninstallFlag:
		if err := completion.Uninstall(); err != nil {
			tui.PrintError(fmt.Sprintf("Failed to uninstall completion: %v", err))
			os.Exit(1)
		}
		tui.PrintSuccess("Shell completion uninstalled.")
	default:
		if completion.IsInstalled() {
			tui.PrintInfo("Shell completion is installed.")
		} else {
			tui.PrintInfo("Shell completion is not installed. Run 'mht completion --install'.")
		}
	}
}

func printUsage() {
	fmt.Println(`mht - Master Hacker Terminal

Usage:
  mht run <command...>     Run a single console command
  mht demo                 Play the deterministic demo script
  mht interactive          Interactive console
  mht probe                Show terminal capability diagnostics

  mht completion           Manage shell tab-completion (--install/--uninstall)
  mht help                 Show this help message
  mht version              Show version

Console commands (run/interactive):
  help, scan, decrypt, infiltrate <target>, hack, trace <target>,
  countertrace|evade, status, clear, exit

Flags (all drawing subcommands):
  --config string     Path to configuration file (default "~/.mht/config.yaml")
  --unicode string    Unicode art mode: auto, on, off (default "auto")
  --width string      Width: auto, compact, standard, wide, or a column count
  --no-color          Disable colored output
  --log-level string  Log level: trace, debug, info, warn, error

Environment Variables:
  MHT_UNICODE, MHT_WIDTH, MHT_NO_COLOR, MHT_ANIMATE,
  MHT_DELAY_SCALE, MHT_LOG_LEVEL

Examples:
  mht run scan                       Run a scan at detected capabilities
  mht demo --unicode off             ASCII-only demo
  mht demo --width compact           Demo laid out for narrow terminals
  MHT_WIDTH=120 mht interactive      Wide layout via environment`)
}
