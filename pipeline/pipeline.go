// Package pipeline coordinates the sorting run: classification, analysis,
// correction, sorting and tie-break resolution.
//
// A run is a single control flow through five phases. Collect splits input
// lines into a direct stream, keyed immediately, and a buffered stream whose
// words go to the morphological analyzer. Analyze closes the analyzer batch
// and builds the correction map from its responses. Reprocess keys the
// buffered lines with corrections applied. Sort drains the sorter, and when
// the target collation carries the vowel-length defect the sorted batch is
// spooled to disk and repaired by the resolver before output.
//
// The phases share no concurrent state; every structure is written in one
// phase and read in a later one. A failure of the analyzer or sorter is
// fatal to the run.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/coolheart77/zsort/analyzer"
	"github.com/coolheart77/zsort/correction"
	"github.com/coolheart77/zsort/internal/hucase"
	"github.com/coolheart77/zsort/resolver"
	"github.com/coolheart77/zsort/sortkey"
	"github.com/coolheart77/zsort/sorter"
)

// Config carries the run's collaborators and switches. Delimiter, when set,
// truncates each line to its sort subject at the first match; the full line
// still travels to the output untouched. Diagnostic switches the key marker
// to its visible form and retains the resolver spool file. LocaleDefect is
// the probe verdict for the configured sorter's collation.
type Config struct {
	Analyzer     analyzer.Client
	Sorter       sorter.Sorter
	Delimiter    *regexp.Regexp
	Diagnostic   bool
	LocaleDefect bool
	Logger       *slog.Logger
}

// Pipeline is the run context threaded through the phases.
type Pipeline struct {
	cfg Config
	enc *sortkey.Encoder
	log *slog.Logger

	// pending counts buffered lines by exact text; order keeps their
	// first-seen sequence so reprocessing emits deterministically.
	pending   map[string]int
	order     []string
	submitted map[string]bool
}

// New builds a run context. The analyzer and sorter must be fresh: both are
// single-batch channels consumed by one Run.
func New(cfg Config) *Pipeline {
	marker := sortkey.Marker
	if cfg.Diagnostic {
		marker = sortkey.VisibleMarker
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		enc:       sortkey.NewEncoder(marker),
		log:       log,
		pending:   make(map[string]int),
		submitted: make(map[string]bool),
	}
}

// Run reads lines from r and writes the sorted lines to w.
func (p *Pipeline) Run(r io.Reader, w io.Writer) error {
	if err := p.collect(r); err != nil {
		return err
	}
	m, err := p.buildCorrections()
	if err != nil {
		return err
	}
	if err := p.reprocess(m); err != nil {
		return err
	}
	recs, err := p.sorted()
	if err != nil {
		return err
	}
	if p.cfg.LocaleDefect {
		recs, err = p.resolve(recs)
		if err != nil {
			return err
		}
	}
	if err := p.emit(w, recs); err != nil {
		return err
	}
	if p.cfg.Diagnostic {
		dumpCounters(p.log)
	}
	return nil
}

// collect classifies every input line. Lines whose sort subject carries no
// digraph are keyed and written to the sorter at once; the rest are buffered
// by multiplicity and their digraph-bearing words submitted for analysis,
// each distinct word once per run.
func (p *Pipeline) collect(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := hucase.ComposeNFC(sc.Text())
		linesTotal.Inc(1)
		subject := p.subject(line)
		if !sortkey.ContainsDigraph(subject) {
			linesDirect.Inc(1)
			rec := sorter.Record{Key: p.enc.Encode(subject), Line: line}
			if err := p.cfg.Sorter.Write(rec); err != nil {
				return fmt.Errorf("pipeline: direct record: %w", err)
			}
			continue
		}
		linesBuffered.Inc(1)
		if _, seen := p.pending[line]; !seen {
			p.order = append(p.order, line)
		}
		p.pending[line]++
		for _, tok := range strings.Fields(subject) {
			if !sortkey.ContainsDigraph(tok) {
				continue
			}
			word := trimPunct(tok)
			if word == "" || p.submitted[word] {
				continue
			}
			p.submitted[word] = true
			wordsSubmitted.Inc(1)
			if err := p.cfg.Analyzer.Submit(word); err != nil {
				return fmt.Errorf("pipeline: submit %q: %w", word, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("pipeline: read input: %w", err)
	}
	p.log.Debug("collect done",
		"buffered", len(p.pending), "submitted", len(p.submitted))
	return nil
}

// buildCorrections closes the analyzer batch and folds every response into
// the correction map, in arrival order.
func (p *Pipeline) buildCorrections() (correction.Map, error) {
	if err := p.cfg.Analyzer.Close(); err != nil {
		return nil, fmt.Errorf("pipeline: close analyzer: %w", err)
	}
	responses, err := p.cfg.Analyzer.Responses()
	if err != nil {
		return nil, fmt.Errorf("pipeline: analyzer: %w", err)
	}
	m := correction.NewBuilder(p.enc).Build(responses)
	p.log.Debug("corrections built", "responses", len(responses), "entries", len(m))
	return m, nil
}

// reprocess keys every buffered line with corrections substituted into its
// sort subject and writes one record per original occurrence. The emitted
// line stays the uncorrected original.
func (p *Pipeline) reprocess(m correction.Map) error {
	for _, line := range p.order {
		subject := p.correctSubject(p.subject(line), m)
		key := p.enc.Encode(subject)
		for n := p.pending[line]; n > 0; n-- {
			if err := p.cfg.Sorter.Write(sorter.Record{Key: key, Line: line}); err != nil {
				return fmt.Errorf("pipeline: buffered record: %w", err)
			}
		}
	}
	return nil
}

// sorted closes the sort batch and reads it back.
func (p *Pipeline) sorted() ([]sorter.Record, error) {
	if err := p.cfg.Sorter.Close(); err != nil {
		return nil, fmt.Errorf("pipeline: close sorter: %w", err)
	}
	recs, err := p.cfg.Sorter.Results()
	if err != nil {
		return nil, fmt.Errorf("pipeline: sorter: %w", err)
	}
	return recs, nil
}

// resolve spools the sorted batch to a durable intermediate file, reloads
// it and repairs the vowel-length inversion. The resolver needs the whole
// batch on hand: it looks across a full equivalence run before it can emit
// the run's first member.
func (p *Pipeline) resolve(recs []sorter.Record) ([]sorter.Record, error) {
	path, err := writeSpool(recs)
	if err != nil {
		return nil, err
	}
	if p.cfg.Diagnostic {
		p.log.Info("resolver spool retained", "path", path)
	} else {
		defer removeSpool(path, p.log)
	}
	recs, err = readSpool(path)
	if err != nil {
		return nil, err
	}
	changed := resolver.Resolve(recs)
	runsResolved.Inc(int64(changed))
	p.log.Debug("resolver pass done", "runs", changed)
	return recs, nil
}

// emit prints the original lines in final order, dropping any stray
// disambiguation marker an input line happened to carry.
func (p *Pipeline) emit(w io.Writer, recs []sorter.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if _, err := fmt.Fprintln(bw, p.enc.StripMarkers(rec.Line)); err != nil {
			return fmt.Errorf("pipeline: write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pipeline: flush output: %w", err)
	}
	return nil
}

// subject returns the sort-relevant prefix of line.
func (p *Pipeline) subject(line string) string {
	if p.cfg.Delimiter == nil {
		return line
	}
	if loc := p.cfg.Delimiter.FindStringIndex(line); loc != nil {
		return line[:loc[0]]
	}
	return line
}

// correctSubject substitutes corrected word forms into the subject. Words
// are looked up with surrounding punctuation stripped and put back with the
// punctuation intact; whitespace between words is preserved as read.
func (p *Pipeline) correctSubject(subject string, m correction.Map) string {
	if len(m) == 0 {
		return subject
	}
	var b strings.Builder
	b.Grow(len(subject))
	rs := []rune(subject)
	for i := 0; i < len(rs); {
		if unicode.IsSpace(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && !unicode.IsSpace(rs[j]) {
			j++
		}
		b.WriteString(correctToken(string(rs[i:j]), m))
		i = j
	}
	return b.String()
}

func correctToken(tok string, m correction.Map) string {
	lead, core, trail := splitPunct(tok)
	if core == "" {
		return tok
	}
	corrected, ok := m.Lookup(core)
	if !ok {
		return tok
	}
	return lead + corrected + trail
}

// splitPunct peels leading and trailing non-alphanumeric runes off a token.
// Inner punctuation stays with the core.
func splitPunct(tok string) (lead, core, trail string) {
	rs := []rune(tok)
	i := 0
	for i < len(rs) && !hucase.IsAlnum(rs[i]) {
		i++
	}
	j := len(rs)
	for j > i && !hucase.IsAlnum(rs[j-1]) {
		j--
	}
	return string(rs[:i]), string(rs[i:j]), string(rs[j:])
}

func trimPunct(tok string) string {
	_, core, _ := splitPunct(tok)
	return core
}
