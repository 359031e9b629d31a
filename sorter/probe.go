package sorter

import "fmt"

// Probe detects the vowel-length inversion some locale collations carry,
// where a long vowel earlier in the word outranks an accent difference
// later in it. It feeds one witness pair and reports whether the sorter
// ordered the pair backwards. The probe consumes the sorter's single batch,
// so callers pass a throwaway instance.
func Probe(s Sorter) (bool, error) {
	// Correct Hungarian order is zsanér before zsáner: the words differ at
	// the second letter first, and a beats á. A defective collation keys on
	// vowel length instead and yields zsáner first.
	pair := []Record{
		{Key: "zsáner", Line: "zsáner"},
		{Key: "zsanér", Line: "zsanér"},
	}
	for _, rec := range pair {
		if err := s.Write(rec); err != nil {
			return false, fmt.Errorf("sorter: probe: %w", err)
		}
	}
	if err := s.Close(); err != nil {
		return false, fmt.Errorf("sorter: probe: %w", err)
	}
	recs, err := s.Results()
	if err != nil {
		return false, fmt.Errorf("sorter: probe: %w", err)
	}
	if len(recs) != 2 {
		return false, fmt.Errorf("sorter: probe: got %d records, want 2", len(recs))
	}
	return recs[0].Key == "zsáner", nil
}
