package sorter

import (
	"errors"
	"testing"
)

func writeAll(t *testing.T, s Sorter, keys []string) {
	t.Helper()
	for _, k := range keys {
		if err := s.Write(Record{Key: k, Line: k}); err != nil {
			t.Fatalf("Write(%q): %v", k, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func resultKeys(t *testing.T, s Sorter) []string {
	t.Helper()
	recs, err := s.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	keys := make([]string, len(recs))
	for i, r := range recs {
		keys[i] = r.Key
	}
	return keys
}

func TestCollateHungarianLetterOrder(t *testing.T) {
	// The tailored alphabet orders the digraphs as letters of their own:
	// c before cs, s before sz, z before zs.
	s := NewCollate('|')
	writeAll(t, s, []string{"zsák", "cukor", "szárny", "zab", "csak", "sás", "almás"})
	want := []string{"almás", "cukor", "csak", "sás", "szárny", "zab", "zsák"}
	got := resultKeys(t, s)
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q\nfull order: %q", i, got[i], want[i], got)
		}
	}
}

func TestCollateVowelAccentOrder(t *testing.T) {
	s := NewCollate('|')
	writeAll(t, s, []string{"zsáner", "zsanér"})
	got := resultKeys(t, s)
	if got[0] != "zsanér" || got[1] != "zsáner" {
		t.Fatalf("got order %q, want [zsanér zsáner]", got)
	}
}

func TestCollateMarkerBreaksContraction(t *testing.T) {
	// kas|zab spells s followed by z; kaszab spells the single letter sz.
	// s ranks before sz, so the marked key must sort first.
	s := NewCollate('|')
	writeAll(t, s, []string{"kaszab", "kas|zab"})
	got := resultKeys(t, s)
	if got[0] != "kas|zab" || got[1] != "kaszab" {
		t.Fatalf("got order %q, want [kas|zab kaszab]", got)
	}
}

func TestCollateLowercaseBeforeUppercase(t *testing.T) {
	s := NewCollate('|')
	writeAll(t, s, []string{"ZAB", "zab", "Zab"})
	got := resultKeys(t, s)
	want := []string{"zab", "Zab", "ZAB"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %q, want %q", got, want)
		}
	}
}

func TestCollateStableOnEqualKeys(t *testing.T) {
	s := NewCollate('|')
	recs := []Record{
		{Key: "alma", Line: "first"},
		{Key: "alma", Line: "second"},
		{Key: "alma", Line: "third"},
	}
	for _, r := range recs {
		if err := s.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got, err := s.Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	for i, r := range recs {
		if got[i].Line != r.Line {
			t.Fatalf("position %d: got line %q, want %q", i, got[i].Line, r.Line)
		}
	}
}

func TestCollateBatchBarrier(t *testing.T) {
	s := NewCollate('|')
	if _, err := s.Results(); !errors.Is(err, ErrNotClosed) {
		t.Fatalf("Results before Close: err = %v, want ErrNotClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Write(Record{Key: "a", Line: "a"}); err == nil {
		t.Fatal("Write after Close succeeded")
	}
}

func TestRecordWireRoundTrip(t *testing.T) {
	r := Record{Key: "kas|zab", Line: "kaszab\tmeg a ló"}
	got := ParseWire(r.Wire())
	if got != r {
		t.Fatalf("ParseWire(Wire(%+v)) = %+v", r, got)
	}
}

// scripted is a canned Sorter that returns the batch with the record whose
// key equals first at the front, simulating a particular locale's ordering.
type scripted struct {
	first  string
	recs   []Record
	closed bool
}

func (s *scripted) Write(rec Record) error {
	s.recs = append(s.recs, rec)
	return nil
}

func (s *scripted) Close() error {
	s.closed = true
	return nil
}

func (s *scripted) Results() ([]Record, error) {
	if !s.closed {
		return nil, ErrNotClosed
	}
	out := make([]Record, 0, len(s.recs))
	for _, r := range s.recs {
		if r.Key == s.first {
			out = append(out, r)
		}
	}
	for _, r := range s.recs {
		if r.Key != s.first {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestProbe(t *testing.T) {
	defect, err := Probe(&scripted{first: "zsáner"})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if !defect {
		t.Fatal("long vowel first: want defect reported")
	}

	defect, err = Probe(&scripted{first: "zsanér"})
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if defect {
		t.Fatal("correct order: want no defect")
	}
}

func TestProbeCollate(t *testing.T) {
	defect, err := Probe(NewCollate('|'))
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if defect {
		t.Fatal("in-process collation reported the vowel-length defect")
	}
}
