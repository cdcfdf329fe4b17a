package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/art"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/tui"
)

// Interactive runs the read-eval loop until exit or end of input. Unknown
// commands reprompt rather than abort. The banner prints first, matching
// the scripted modes.
func Interactive(cfg render.Config, in io.Reader, opts Options) error {
	s := New(cfg, opts)
	out := s.out
	banner, err := art.MainBanner(cfg)
	if err != nil {
		return err
	}
	s.printLines(banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\n%s ", tui.StyleCommand.Render(">"))
		if !scanner.Scan() {
			// EOF or read failure ends the session cleanly.
			fmt.Fprintln(out)
			fmt.Fprintln(out, "End of input detected.")
			return s.farewell(scanner.Err())
		}
		cmd, args := Parse(scanner.Text())
		switch err := s.Execute(cmd, args); {
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, ErrUnknownCommand):
			// Already reported; keep prompting.
		case err != nil:
			return err
		}
	}
}

// farewell prints the exit lines and surfaces any scanner error.
func (s *Session) farewell(readErr error) error {
	fmt.Fprintln(s.out, "Connection terminated.")
	fmt.Fprintln(s.out, "Stay anonymous, hacker.")
	return readErr
}
