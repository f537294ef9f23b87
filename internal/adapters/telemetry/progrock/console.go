package progrock

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

// Console is a progrock.Writer that renders the tape as linear, prefixed
// lines: one start line per profile, its output, and a completion line.
type Console struct {
	out *termenv.Output

	mu      sync.Mutex
	names   map[string]string
	started map[string]time.Time
	done    map[string]bool
	buffers map[string]*bytes.Buffer
}

var _ progrock.Writer = (*Console)(nil)

// NewConsole creates a Console writing to w, or stderr when w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{
		out:     termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
		names:   make(map[string]string),
		started: make(map[string]time.Time),
		done:    make(map[string]bool),
		buffers: make(map[string]*bytes.Buffer),
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// WriteStatus renders one tape update. Starts are printed before logs and
// completions after them, so a single update reads in order.
func (c *Console) WriteStatus(update *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if _, seen := c.names[v.GetId()]; !seen {
			c.startLocked(v)
		}
	}
	for _, l := range update.GetLogs() {
		c.logLocked(l.GetVertex(), l.GetData())
	}
	for _, v := range update.GetVertexes() {
		if v.GetCompleted() != nil && !c.done[v.GetId()] {
			c.completeLocked(v)
		}
	}
	return nil
}

// Close flushes partial lines of unfinished vertices.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.buffers {
		c.flushLocked(id)
	}
	return nil
}

func (c *Console) prefix(id string) string {
	return c.out.String(fmt.Sprintf("[%s]", c.names[id])).Faint().String()
}

func (c *Console) startLocked(v *progrock.Vertex) {
	c.names[v.GetId()] = v.GetName()
	started := time.Now()
	if ts := v.GetStarted(); ts != nil {
		started = ts.AsTime()
	}
	c.started[v.GetId()] = started
	c.buffers[v.GetId()] = new(bytes.Buffer)

	_, _ = fmt.Fprintf(c.out, "%s Building...\n", c.prefix(v.GetId()))
}

func (c *Console) logLocked(id string, data []byte) {
	buf, ok := c.buffers[id]
	if !ok {
		return
	}
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			rest := new(bytes.Buffer)
			rest.Write(line)
			c.buffers[id] = rest
			return
		}
		c.printLineLocked(id, line)
	}
}

func (c *Console) completeLocked(v *progrock.Vertex) {
	id := v.GetId()
	c.flushLocked(id)
	c.done[id] = true
	delete(c.buffers, id)

	duration := v.GetCompleted().AsTime().Sub(c.started[id]).Round(time.Millisecond)
	if v.Error != nil {
		symbol := c.out.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(c.out, "%s %s Failed after %v: %s\n", c.prefix(id), symbol, duration, v.GetError())
		return
	}
	symbol := c.out.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(c.out, "%s %s Built in %v\n", c.prefix(id), symbol, duration)
}

func (c *Console) flushLocked(id string) {
	buf, ok := c.buffers[id]
	if !ok || buf.Len() == 0 {
		return
	}
	c.printLineLocked(id, buf.Bytes())
	buf.Reset()
}

func (c *Console) printLineLocked(id string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(c.out, "%s %s\n", c.prefix(id), line)
}
