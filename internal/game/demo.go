package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/art"
	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
)

// demoSeed makes every demo run draw the same random values.
const demoSeed = 1337

// DemoScript is the fixed command sequence the demo plays.
var DemoScript = []string{
	"scan",
	"infiltrate MAINFRAME-7",
	"hack",
	"trace QUANTUM-DB",
	"countertrace",
	"status",
	"exit",
}

// RunDemo plays the scripted session against out. The random source is
// seeded so two runs at the same width and unicode settings produce
// identical bytes.
func RunDemo(cfg render.Config, out io.Writer) error {
	s := New(cfg, Options{Out: out, Seed: demoSeed})
	banner, err := art.MainBanner(cfg)
	if err != nil {
		return err
	}
	s.printLines(banner)
	for _, line := range DemoScript {
		fmt.Fprintf(out, "\n> %s\n", line)
		cmd, args := Parse(line)
		if err := s.Execute(cmd, args); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
	return nil
}
