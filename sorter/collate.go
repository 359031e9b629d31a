package sorter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collate sorts the batch in process under the CLDR Hungarian tailoring.
// Digraphs collate as single letters, short and long vowel pairs order
// correctly, and lowercase precedes uppercase at the tertiary level.
//
// Keys are compared segment by segment around the disambiguation marker:
// the marker is a hard break, so a key that ends a segment where another
// key keeps going sorts first. That is what lets kas|zab escape the kasz
// contraction that plain kaszab falls into.
type Collate struct {
	marker string
	col    *collate.Collator
	recs   []Record
	closed bool
}

// NewCollate returns an in-process sorter that splits keys on marker.
func NewCollate(marker rune) *Collate {
	return &Collate{
		marker: string(marker),
		col:    collate.New(language.Hungarian),
	}
}

// Write appends one record to the batch.
func (s *Collate) Write(rec Record) error {
	if s.closed {
		return errWriteAfterClose("collate")
	}
	s.recs = append(s.recs, rec)
	return nil
}

// Close seals the batch.
func (s *Collate) Close() error {
	s.closed = true
	return nil
}

// Results sorts and returns the batch. The sort is stable, so records with
// equal keys keep their write order.
func (s *Collate) Results() ([]Record, error) {
	if !s.closed {
		return nil, ErrNotClosed
	}
	sort.SliceStable(s.recs, func(i, j int) bool {
		return s.compareKeys(s.recs[i].Key, s.recs[j].Key) < 0
	})
	return s.recs, nil
}

func (s *Collate) compareKeys(a, b string) int {
	as := strings.Split(a, s.marker)
	bs := strings.Split(b, s.marker)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := s.col.CompareString(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}
