// Package sorter orders prepared records by their sort key under Hungarian
// collation rules.
//
// A record pairs the key the comparison runs on with the original input line
// that travels alongside it. The two sorter implementations share a batch
// discipline: every record is written before Close, and Results is read only
// after Close. Collate sorts in process with the CLDR Hungarian tailoring;
// Exec delegates to an external sort command and inherits whatever collation
// that command's locale provides, including the locale's defects.
package sorter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotClosed is returned by Results when the batch is still open.
var ErrNotClosed = errors.New("sorter: results before close")

// Record is one line of the batch. Key carries the prepared sort key; Line
// is the untouched input line emitted after sorting.
type Record struct {
	Key  string
	Line string
}

// Sorter is the ordering channel. Records go in before Close; the sorted
// batch comes out after.
type Sorter interface {
	Write(rec Record) error
	Close() error
	// Results returns the batch in sorted key order, ties kept in write
	// order. It returns ErrNotClosed before Close.
	Results() ([]Record, error)
}

// Wire renders the record in the exchange format: key, TAB, line. Keys
// never contain a TAB, so the first TAB of a wire line is always the field
// boundary even when the line itself has embedded tabs.
func (r Record) Wire() string {
	return r.Key + "\t" + r.Line
}

// ParseWire is the inverse of Wire.
func ParseWire(s string) Record {
	key, line, _ := strings.Cut(s, "\t")
	return Record{Key: key, Line: line}
}

func errWriteAfterClose(impl string) error {
	return fmt.Errorf("sorter: %s: write after close", impl)
}
