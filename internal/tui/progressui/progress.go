//go:build !notui

package progressui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui"
)

// tickMsg advances the bar by one step.
type tickMsg struct{}

// model drives the fill animation.
type model struct {
	cfg     render.Config
	opts    Options
	current int
	spinner spinner.Model
	done    bool
	err     error
}

func newModel(cfg render.Config, opts Options) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(tui.ColorPrimary)
	return model{cfg: cfg, opts: opts, spinner: s}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.opts.Delay, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.current++
		if m.current >= m.opts.Steps {
			m.current = m.opts.Steps
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = errors.New("interrupted")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	bar, err := render.ProgressBar(m.current, m.opts.Steps, barWidth, m.cfg.Palette)
	if err != nil {
		// Steps is validated before the program starts; this is unreachable
		// but View cannot return an error.
		return ""
	}
	marker := m.spinner.View()
	if m.done {
		marker = tui.StyleSuccess.Render(tui.IconCheck)
	}
	return fmt.Sprintf("%s\n%s %s\n", header(m.opts.Label), marker, bar)
}

// Play animates a bar filling over opts.Steps ticks. Falls back to the plain
// rendition when animation is unavailable or pointless (no TTY, plain mode,
// zero delay).
func Play(cfg render.Config, opts Options) error {
	if opts.Steps <= 0 {
		return render.ErrInvalidDenominator
	}
	if tui.IsPlainMode() || opts.Delay <= 0 || !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd() fits in int on all supported platforms
		return PlayPlain(os.Stdout, cfg, opts)
	}

	p := tea.NewProgram(newModel(cfg, opts))
	finalModel, err := p.Run()
	if err != nil {
		// Bubbletea itself failed — run plain
		return PlayPlain(os.Stdout, cfg, opts)
	}
	if fm, ok := finalModel.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
