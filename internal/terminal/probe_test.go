package terminal

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

func TestProbe_NotATerminal(t *testing.T) {
	// Pipes are not terminals; the probe must decline without error.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if pr := Probe(r, w); pr != nil {
		t.Errorf("Probe on a pipe = %+v, want nil", pr)
	}
}

func TestProbe_NilStreams(t *testing.T) {
	if pr := Probe(nil, nil); pr != nil {
		t.Errorf("Probe(nil, nil) = %+v, want nil", pr)
	}
}

func TestProbeExchange_SingleWidthGlyph(t *testing.T) {
	// Cursor at column 5 before the glyph, 6 after: one cell, as expected.
	in := strings.NewReader("\x1b[1;5R\x1b[1;6R")
	var out bytes.Buffer

	pr := probeExchange(in, &out)
	if pr == nil {
		t.Fatal("probeExchange = nil, want result")
	}
	if !pr.WidthOK {
		t.Error("WidthOK = false, want true")
	}
	if pr.Columns != 6 {
		t.Errorf("Columns = %d, want 6", pr.Columns)
	}
	if got, want := out.String(), "\x1b[6n"+probeGlyph+"\x1b[6n"; got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
}

func TestProbeExchange_DoubleWidthRendering(t *testing.T) {
	// A terminal that advances two cells for the glyph fails the check.
	in := strings.NewReader("\x1b[1;5R\x1b[1;7R")
	var out bytes.Buffer

	pr := probeExchange(in, &out)
	if pr == nil {
		t.Fatal("probeExchange = nil, want result")
	}
	if pr.WidthOK {
		t.Error("WidthOK = true, want false for a two-cell advance")
	}
}

func TestProbeExchange_MidLine(t *testing.T) {
	// The delta check must not assume the probe starts at column 1.
	in := strings.NewReader("\x1b[4;37R\x1b[4;38R")
	var out bytes.Buffer

	pr := probeExchange(in, &out)
	if pr == nil {
		t.Fatal("probeExchange = nil, want result")
	}
	if !pr.WidthOK {
		t.Error("WidthOK = false, want true mid-line")
	}
	if pr.Columns != 38 {
		t.Errorf("Columns = %d, want 38", pr.Columns)
	}
}

func TestProbeExchange_MalformedReply(t *testing.T) {
	in := strings.NewReader("no cursor report here R")
	var out bytes.Buffer

	if pr := probeExchange(in, &out); pr != nil {
		t.Errorf("probeExchange on garbage = %+v, want nil", pr)
	}
}

func TestReadCPR_Timeout(t *testing.T) {
	// A terminal that never answers must not stall past the deadline.
	r, w := io.Pipe()
	defer r.Close()
	defer w.Close()

	start := time.Now()
	reply, ok := readCPR(r, 20*time.Millisecond)
	if ok {
		t.Errorf("readCPR = %q, want timeout", reply)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("readCPR took %v, want prompt timeout", elapsed)
	}
}

func TestReadCPR_StopsAtTerminator(t *testing.T) {
	// Bytes after the CPR terminator belong to the next read, not this one.
	in := strings.NewReader("\x1b[1;2Rtrailing")
	reply, ok := readCPR(in, time.Second)
	if !ok {
		t.Fatal("readCPR timed out on an immediate reply")
	}
	if reply != "\x1b[1;2R" {
		t.Errorf("reply = %q, want %q", reply, "\x1b[1;2R")
	}
}

func TestCPRPattern(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		col   string
		match bool
	}{
		{"well_formed", "\x1b[12;2R", "2", true},
		{"multi_digit", "\x1b[3;157R", "157", true},
		{"garbage", "hello", "", false},
		{"truncated", "\x1b[12;", "", false},
		{"missing_row", "\x1b[;2R", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cprPattern.FindStringSubmatch(tt.reply)
			if tt.match {
				if m == nil {
					t.Fatalf("pattern should match %q", tt.reply)
				}
				if m[2] != tt.col {
					t.Errorf("col = %q, want %q", m[2], tt.col)
				}
			} else if m != nil {
				t.Errorf("pattern should not match %q", tt.reply)
			}
		})
	}
}
