//go:build ignore

// e2e_zsort runs the whole sorting pipeline against a small Hungarian
// corpus and writes structured results to data/e2e_zsort.log.
// Run from the project root:
//
//	go run e2e/e2e_zsort.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coolheart77/zsort/analyzer"
	"github.com/coolheart77/zsort/data"
	"github.com/coolheart77/zsort/pipeline"
	"github.com/coolheart77/zsort/sorter"
	"github.com/coolheart77/zsort/sortkey"
)

const (
	logPath   = "data/e2e_zsort.log"
	separator = "=========================================================="
)

type testResult struct {
	name     string
	passed   bool
	duration time.Duration
	detail   string
}

func pass(name string, start time.Time) testResult {
	return testResult{name: name, passed: true, duration: time.Since(start)}
}

func fail(name, detail string, start time.Time) testResult {
	return testResult{name: name, passed: false, duration: time.Since(start), detail: detail}
}

func runBatch(input []string, defect bool) ([]string, error) {
	var srt sorter.Sorter = sorter.NewCollate(sortkey.Marker)
	if defect {
		srt = &byteOrder{}
	}
	p := pipeline.New(pipeline.Config{
		Analyzer:     analyzer.NewStaticFromLines(data.Analyses),
		Sorter:       srt,
		LocaleDefect: defect,
	})
	var out strings.Builder
	if err := p.Run(strings.NewReader(strings.Join(input, "\n")+"\n"), &out); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), nil
}

// byteOrder stands in for a locale-blind external sort.
type byteOrder struct {
	recs   []sorter.Record
	closed bool
}

func (s *byteOrder) Write(rec sorter.Record) error {
	s.recs = append(s.recs, rec)
	return nil
}

func (s *byteOrder) Close() error {
	s.closed = true
	return nil
}

func (s *byteOrder) Results() ([]sorter.Record, error) {
	if !s.closed {
		return nil, sorter.ErrNotClosed
	}
	for i := 1; i < len(s.recs); i++ {
		for j := i; j > 0 && s.recs[j].Key < s.recs[j-1].Key; j-- {
			s.recs[j], s.recs[j-1] = s.recs[j-1], s.recs[j]
		}
	}
	return s.recs, nil
}

func expectOrder(name string, input, want []string, defect bool) testResult {
	start := time.Now()
	got, err := runBatch(input, defect)
	if err != nil {
		return fail(name, err.Error(), start)
	}
	if len(got) != len(want) {
		return fail(name, fmt.Sprintf("got %d lines, want %d", len(got), len(want)), start)
	}
	for i := range want {
		if got[i] != want[i] {
			return fail(name, fmt.Sprintf("line %d: got %q, want %q", i, got[i], want[i]), start)
		}
	}
	return pass(name, start)
}

func main() {
	start := time.Now()
	results := []testResult{
		expectOrder("digraph letter order",
			[]string{"zsák", "cukor", "sás", "szárny", "csak", "zab"},
			[]string{"cukor", "csak", "sás", "szárny", "zab", "zsák"},
			false),
		expectOrder("proper noun boundary",
			[]string{"kasza", "Kaszab"},
			[]string{"Kaszab", "kasza"},
			false),
		expectOrder("abstract noun suffix",
			[]string{"gazt", "gazság"},
			[]string{"gazság", "gazt"},
			false),
		expectOrder("duplicate multiplicity",
			[]string{"kaszab", "alma", "kaszab", "kaszab"},
			[]string{"alma", "kaszab", "kaszab", "kaszab"},
			false),
		expectOrder("vowel length resolution",
			[]string{"zsánér", "zsanér", "zsáner", "zsaner"},
			[]string{"zsaner", "zsáner", "zsanér", "zsánér"},
			true),
		expectOrder("case order inside accent group",
			[]string{"ZSANER", "zsaner", "Zsaner"},
			[]string{"zsaner", "Zsaner", "ZSANER"},
			true),
	}

	f, err := os.Create(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "e2e_zsort:", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(f)
	passed := 0
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "zsort e2e run %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(w, separator)
	for _, r := range results {
		status := "PASS"
		if r.passed {
			passed++
		} else {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-4s %-35s %10s %s\n", status, r.name, r.duration.Round(time.Microsecond), r.detail)
	}
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%d/%d passed in %s\n", passed, len(results), time.Since(start).Round(time.Millisecond))
	w.Flush()
	f.Close()

	fmt.Printf("%d/%d passed, log written to %s\n", passed, len(results), logPath)
	if passed != len(results) {
		os.Exit(1)
	}
}
