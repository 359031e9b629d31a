package pipeline

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/coolheart77/zsort/sorter"
)

// The spool is the durable intermediate between sorting and resolution: the
// full sorted batch in wire format, one record per line.

func writeSpool(recs []sorter.Record) (string, error) {
	f, err := os.CreateTemp("", "zsort-spool-*")
	if err != nil {
		return "", fmt.Errorf("pipeline: create spool: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, rec := range recs {
		if _, err := fmt.Fprintln(w, rec.Wire()); err != nil {
			f.Close()
			return "", fmt.Errorf("pipeline: write spool: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("pipeline: flush spool: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("pipeline: close spool: %w", err)
	}
	return f.Name(), nil
}

func readSpool(path string) ([]sorter.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: open spool: %w", err)
	}
	defer f.Close()

	var recs []sorter.Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		recs = append(recs, sorter.ParseWire(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: read spool: %w", err)
	}
	return recs, nil
}

func removeSpool(path string, log *slog.Logger) {
	if err := os.Remove(path); err != nil {
		log.Warn("spool not removed", "path", path, "error", err)
	}
}
