package terminal

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// ProbeResult is the outcome of a live width probe. It exists only when the
// probe ran to completion; a nil result means the probe was skipped or failed
// and carries no signal either way.
type ProbeResult struct {
	WidthOK bool // terminal reported the expected cursor advance
	Columns int  // cursor column after the test glyph (1-based)
}

// ProbeTimeout bounds the wait for each cursor-position reply. A hung or
// non-responsive terminal must not stall startup.
const ProbeTimeout = 100 * time.Millisecond

// probeGlyph is the test character written during the probe. Light
// box-drawing, single column on every conforming terminal.
const probeGlyph = "╔"

// cprPattern matches a cursor position report: ESC [ row ; col R.
var cprPattern = regexp.MustCompile(`\x1b\[(\d+);(\d+)R`)

// Probe empirically verifies Unicode rendering width by writing a test glyph
// and asking the terminal where the cursor landed (CSI 6n).
//
// The terminal is switched to raw mode for the exchange, the cursor is saved
// before the glyph is written and restored afterwards, and cooked mode comes
// back on every exit path. Any error, timeout, or malformed reply yields nil:
// probe failure is an inconclusive signal, never a crash and never a vote for
// ASCII.
func Probe(in, out *os.File) *ProbeResult {
	if in == nil || out == nil {
		return nil
	}
	fd := int(in.Fd()) //nolint:gosec // Fd() fits in int on all supported platforms
	if !term.IsTerminal(fd) {
		return nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil
	}
	// Save the cursor so a probe that runs mid-line puts it back where the
	// caller left it; clear-to-end then erases only the test glyph.
	out.WriteString("\x1b[s") //nolint:errcheck // best-effort positioning
	defer func() {
		out.WriteString("\x1b[u\x1b[K") //nolint:errcheck // best-effort cleanup
		term.Restore(fd, oldState)      //nolint:errcheck // best-effort cleanup
	}()

	return probeExchange(in, out)
}

// probeExchange measures the cursor advance caused by the test glyph: query
// the column, write the glyph, query again. The delta is the glyph's rendered
// width regardless of where on the line the probe started.
func probeExchange(in io.Reader, out io.Writer) *ProbeResult {
	start, ok := queryColumn(in, out)
	if !ok {
		return nil
	}
	if _, err := io.WriteString(out, probeGlyph); err != nil {
		return nil
	}
	end, ok := queryColumn(in, out)
	if !ok {
		return nil
	}
	return &ProbeResult{
		WidthOK: end-start == runewidth.StringWidth(probeGlyph),
		Columns: end,
	}
}

// queryColumn sends CSI 6n and parses the column out of the CPR reply.
func queryColumn(in io.Reader, out io.Writer) (int, bool) {
	if _, err := io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, false
	}
	reply, ok := readCPR(in, ProbeTimeout)
	if !ok {
		return 0, false
	}
	m := cprPattern.FindStringSubmatch(reply)
	if m == nil {
		return 0, false
	}
	col, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return col, true
}

// readCPR collects bytes until the CPR terminator 'R' or the deadline. The
// read runs in a background goroutine because a terminal descriptor cannot
// carry a read deadline; on timeout the goroutine stays parked on the
// descriptor and swallows a late reply, keeping it out of the cooked-mode
// input queue.
func readCPR(in io.Reader, timeout time.Duration) (string, bool) {
	replies := make(chan string, 1)
	go func() {
		var reply []byte
		buf := make([]byte, 1)
		for len(reply) < 32 {
			n, err := in.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			reply = append(reply, buf[0])
			if buf[0] == 'R' {
				replies <- string(reply)
				return
			}
		}
	}()

	select {
	case reply := <-replies:
		return reply, true
	case <-time.After(timeout):
		return "", false
	}
}
