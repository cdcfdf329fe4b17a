package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oxygen-fragment/Master-Hacker-Terminal/internal/render"
)

func TestRunDemoIsDeterministic(t *testing.T) {
	run := func() string {
		var buf bytes.Buffer
		if err := RunDemo(render.NewConfig(false, 80), &buf); err != nil {
			t.Fatalf("RunDemo: %v", err)
		}
		return buf.String()
	}
	first, second := run(), run()
	if first != second {
		t.Fatalf("demo output differs between runs:\n%s\n---\n%s", first, second)
	}
}

func TestRunDemoPlaysFullScript(t *testing.T) {
	var buf bytes.Buffer
	if err := RunDemo(render.NewConfig(false, 80), &buf); err != nil {
		t.Fatalf("RunDemo: %v", err)
	}
	out := buf.String()

	for _, line := range DemoScript {
		if !strings.Contains(out, "> "+line) {
			t.Errorf("demo transcript missing echoed command %q", line)
		}
	}
	for _, want := range []string{
		"Found 3 targets:",
		"Infiltrating MAINFRAME-7",
		"HACK SUCCESSFUL",
		"Credits earned: 1337",
		"37.7749 deg N, 122.4194 deg W",
		"Trace blocked. Identity scrambled.",
		"Stay anonymous, hacker.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo transcript missing %q", want)
		}
	}
}

func TestRunDemoRespectsWidth(t *testing.T) {
	for _, width := range []int{60, 80, 120} {
		var buf bytes.Buffer
		if err := RunDemo(render.NewConfig(true, width), &buf); err != nil {
			t.Fatalf("RunDemo width %d: %v", width, err)
		}
		if buf.Len() == 0 {
			t.Errorf("no output at width %d", width)
		}
	}
}

func TestInteractiveScanThenExit(t *testing.T) {
	var buf bytes.Buffer
	in := strings.NewReader("scan\nexit\n")
	if err := Interactive(render.NewConfig(false, 80), in, Options{Out: &buf}); err != nil {
		t.Fatalf("Interactive: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Found 3 targets:") {
		t.Errorf("missing scan output:\n%s", out)
	}
	if !strings.Contains(out, "Connection terminated.") {
		t.Errorf("missing exit output:\n%s", out)
	}
}

func TestInteractiveHandlesEOF(t *testing.T) {
	var buf bytes.Buffer
	if err := Interactive(render.NewConfig(false, 80), strings.NewReader(""), Options{Out: &buf}); err != nil {
		t.Fatalf("Interactive: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "End of input detected.") {
		t.Errorf("missing EOF message:\n%s", out)
	}
	if !strings.Contains(out, "Stay anonymous, hacker.") {
		t.Errorf("missing farewell:\n%s", out)
	}
}

func TestInteractiveKeepsPromptingAfterUnknown(t *testing.T) {
	var buf bytes.Buffer
	in := strings.NewReader("frobnicate\nstatus\nexit\n")
	if err := Interactive(render.NewConfig(false, 80), in, Options{Out: &buf}); err != nil {
		t.Fatalf("Interactive: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Command not recognized.") {
		t.Errorf("missing unknown-command message:\n%s", out)
	}
	if !strings.Contains(out, "Security Level") {
		t.Errorf("status after unknown command did not run:\n%s", out)
	}
}
