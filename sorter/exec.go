package sorter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Exec delegates sorting to an external command, typically sort(1) keyed on
// the first TAB field. The command inherits the process environment plus any
// extra variables given at construction, so the caller controls which locale
// the external collation runs under.
type Exec struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	w      *bufio.Writer
	closed bool
	recs   []Record
	read   bool
}

// SortArgs is the conventional argument list for sort(1): stable, keyed on
// the first TAB-separated field only.
var SortArgs = []string{"-t", "\t", "-k1,1", "-s"}

// NewExec starts the sort command. env entries of the form KEY=VALUE are
// appended to the inherited environment.
func NewExec(name string, args, env []string) (*Exec, error) {
	cmd := exec.Command(name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("sorter: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("sorter: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("sorter: start %s: %w", name, err)
	}
	return &Exec{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		w:      bufio.NewWriter(stdin),
	}, nil
}

// Write streams one record to the command's stdin.
func (s *Exec) Write(rec Record) error {
	if s.closed {
		return errWriteAfterClose("exec")
	}
	if _, err := fmt.Fprintln(s.w, rec.Wire()); err != nil {
		return fmt.Errorf("sorter: write record: %w", err)
	}
	return nil
}

// Close flushes and closes stdin. The command sorts on end of input.
func (s *Exec) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("sorter: flush: %w", err)
	}
	if err := s.stdin.Close(); err != nil {
		return fmt.Errorf("sorter: close stdin: %w", err)
	}
	return nil
}

// Results drains the command's stdout and waits for it to exit.
func (s *Exec) Results() ([]Record, error) {
	if !s.closed {
		return nil, ErrNotClosed
	}
	if s.read {
		return s.recs, nil
	}
	s.read = true

	sc := bufio.NewScanner(s.stdout)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		s.recs = append(s.recs, ParseWire(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sorter: read results: %w", err)
	}
	if err := s.cmd.Wait(); err != nil {
		return nil, fmt.Errorf("sorter: %w", err)
	}
	return s.recs, nil
}
