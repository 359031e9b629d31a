package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Client is the analyzer channel. It is opened once per run; every word is
// submitted before Close, and the response stream is read only after Close.
type Client interface {
	Submit(word string) error
	Close() error
	// Responses returns every response line of the batch, parsed, in
	// arrival order. It returns ErrNotClosed before Close.
	Responses() ([]Analysis, error)
}

// Subprocess runs the analyzer as an external command, feeding words on its
// stdin and reading tagged lines from its stdout after stdin is closed.
type Subprocess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	w      *bufio.Writer
	closed bool
	parsed []Analysis
	read   bool
}

// NewSubprocess starts the analyzer command. The returned client owns the
// process; a failure of the process is fatal to the run and surfaces from
// Responses.
func NewSubprocess(name string, args ...string) (*Subprocess, error) {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("analyzer: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("analyzer: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("analyzer: start %s: %w", name, err)
	}
	return &Subprocess{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		w:      bufio.NewWriter(stdin),
	}, nil
}

// Submit sends one word to the analyzer.
func (s *Subprocess) Submit(word string) error {
	if s.closed {
		return fmt.Errorf("analyzer: submit after close")
	}
	if _, err := fmt.Fprintln(s.w, word); err != nil {
		return fmt.Errorf("analyzer: submit %q: %w", word, err)
	}
	return nil
}

// Close flushes and closes the request channel. The analyzer flushes its
// full response batch in reaction to end of input.
func (s *Subprocess) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("analyzer: flush: %w", err)
	}
	if err := s.stdin.Close(); err != nil {
		return fmt.Errorf("analyzer: close stdin: %w", err)
	}
	return nil
}

// Responses drains the analyzer's stdout and waits for process exit.
func (s *Subprocess) Responses() ([]Analysis, error) {
	if !s.closed {
		return nil, ErrNotClosed
	}
	if s.read {
		return s.parsed, nil
	}
	s.read = true

	sc := bufio.NewScanner(s.stdout)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if a, ok := Parse(sc.Text()); ok {
			s.parsed = append(s.parsed, a)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("analyzer: read responses: %w", err)
	}
	if err := s.cmd.Wait(); err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return s.parsed, nil
}

// Static is an in-memory Client backed by a fixed response table. It serves
// tests and runs without an external analyzer: unknown words simply receive
// no response lines, which downstream treats as "leave unmodified".
type Static struct {
	table     map[string][]string
	submitted []string
	closed    bool
}

// NewStatic returns a Static client. table maps a word to its raw response
// lines; a nil table answers every word with silence.
func NewStatic(table map[string][]string) *Static {
	return &Static{table: table}
}

// NewStaticFromLines builds a Static client from a raw response table, one
// tagged line per entry, keyed by each line's surface field. Blank lines
// and lines starting with # are skipped.
func NewStaticFromLines(data []byte) *Static {
	table := make(map[string][]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		surface, _, _ := strings.Cut(line, "\t")
		table[surface] = append(table[surface], line)
	}
	return NewStatic(table)
}

// Submit records the word. Repeat submissions are kept (the dispatcher is
// responsible for deduplication, mirroring the real channel).
func (s *Static) Submit(word string) error {
	if s.closed {
		return fmt.Errorf("analyzer: submit after close")
	}
	s.submitted = append(s.submitted, word)
	return nil
}

// Close closes the request channel.
func (s *Static) Close() error {
	s.closed = true
	return nil
}

// Responses replays the table entries for every submitted word, in
// submission order.
func (s *Static) Responses() ([]Analysis, error) {
	if !s.closed {
		return nil, ErrNotClosed
	}
	var out []Analysis
	for _, w := range s.submitted {
		for _, line := range s.table[w] {
			if a, ok := Parse(line); ok {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// Submitted returns the words submitted so far, in order.
func (s *Static) Submitted() []string { return s.submitted }
