// Package sortkey builds disambiguated sort keys for Hungarian text.
//
// Hungarian orthography writes several single phonemes as two- or
// three-letter units (cs, dz, dzs, gy, ly, ny, sz, ty, zs) that collate as
// letters of their own, and doubles them in "simplified" form by doubling
// only the first letter (ssz for sz+sz). Both conventions are ambiguous for
// byte- or rune-level collation. Encode produces a key in which
//
//   - simplified doublings are expanded to their full two-unit form, and
//   - letter boundaries that would otherwise read as a digraph are held
//     apart by a zero-width marker rune,
//
// so that a collator reading the key sees the intended letter sequence.
//
// The marker is configurable: diagnostic runs use a visible '|' so keys can
// be inspected, normal runs use a zero-width non-joiner. Marker runes
// already present in the input pass through unchanged: corrected words
// re-enter Encode carrying the markers the correction phase placed, and a
// marker suppresses both doubling expansion and boundary re-marking across
// it.
//
// All functions are safe for concurrent use.
//
// Known limitations:
//
//   - Doubling expansion trusts spelling, not pronunciation: a true
//     letter sequence that happens to spell a simplified doubling (rare
//     compound seams) is expanded like any other. Upstream break markers
//     or analyzer corrections are the intended remedy.
//   - Because markers pass through, raw input that natively contains the
//     marker rune (the visible '|' in diagnostic runs) reads as a
//     boundary.
package sortkey

import (
	"strings"

	"github.com/coolheart77/zsort/internal/hucase"
)

const (
	// Marker is the zero-width rune inserted at disambiguated boundaries
	// (U+200C zero-width non-joiner).
	Marker = '‌'
	// VisibleMarker replaces Marker in diagnostic mode.
	VisibleMarker = '|'
)

// digraphs lists every Hungarian digraph and trigraph, longest first.
var digraphs = []string{"dzs", "cs", "dz", "gy", "ly", "ny", "sz", "ty", "zs"}

// doubling describes one simplified doubled form and the letters that, when
// immediately preceding it, block the expansion (because the match would
// then cut into a longer unit: c-ssz is cs+sz, not c+sz+sz).
type doubling struct {
	pattern  []rune // simplified form, lowercase
	notAfter string // preceding lowercase letters that block expansion
}

var doublings = []doubling{
	{[]rune("ddzs"), ""},
	{[]rune("ccs"), ""},
	{[]rune("ddz"), ""},
	{[]rune("ggy"), ""},
	{[]rune("lly"), ""},
	{[]rune("nny"), ""},
	{[]rune("ssz"), "cz"},
	{[]rune("tty"), ""},
	{[]rune("zzs"), "ds"},
}

// boundaryPairs maps a leading letter to the following patterns that form an
// ambiguous digraph boundary with it. Longer patterns come first: at an
// s|sz boundary the sz reading must win over the bare z reading.
var boundaryPairs = map[rune][]string{
	'c': {"cs", "s"},
	'd': {"dz", "z"},
	'g': {"gy", "y"},
	'l': {"ly", "y"},
	'n': {"ny", "y"},
	's': {"sz", "z"},
	't': {"ty", "y"},
	'z': {"zs", "s"},
}

// ContainsDigraph reports whether s contains any Hungarian digraph or
// trigraph substring, ignoring case.
func ContainsDigraph(s string) bool {
	folded := hucase.ToLower(s)
	for _, d := range digraphs {
		if strings.Contains(folded, d) {
			return true
		}
	}
	return false
}

// Encoder turns text into disambiguated sort keys using a fixed marker rune.
type Encoder struct {
	marker rune
}

// NewEncoder returns an Encoder using the given marker rune.
// Use Marker for normal operation and VisibleMarker for diagnostics.
func NewEncoder(marker rune) *Encoder {
	return &Encoder{marker: marker}
}

// Marker returns the marker rune the encoder inserts.
func (e *Encoder) Marker() rune {
	return e.marker
}

// Encode builds the sort key for text. The steps run in fixed order, each on
// the previous step's output: simplified doublings are expanded, then, if
// the text carries any non-alphanumeric character (explicit break markers
// from upstream), digraph boundaries flanked by them are marked, and finally
// everything that is neither alphanumeric nor the marker is stripped.
func (e *Encoder) Encode(text string) string {
	text = expandDoublings(text)
	if hasNonAlnum(text) {
		text = e.markBoundaries(text)
	}
	return e.stripNonKey(text)
}

// StripMarkers removes every marker rune from s.
func (e *Encoder) StripMarkers(s string) string {
	if !strings.ContainsRune(s, e.marker) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != e.marker {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// expandDoublings rewrites simplified doubled digraphs and trigraphs into
// their full two-unit form: for a unit with first letter f and tail T, the
// spelling f+f+T becomes f+T+f+T. Case of the original runes is preserved;
// matching ignores case. The blocking context is judged on the input text.
func expandDoublings(s string) string {
	rs := []rune(s)
	folded := make([]rune, len(rs))
	for i, r := range rs {
		folded[i] = hucase.Lower(r)
	}

	out := make([]rune, 0, len(rs)+4)
	i := 0
scan:
	for i < len(rs) {
		for _, d := range doublings {
			if !foldedHasPrefix(folded[i:], d.pattern) {
				continue
			}
			if i > 0 && strings.ContainsRune(d.notAfter, folded[i-1]) {
				continue
			}
			tail := rs[i+2 : i+len(d.pattern)]
			out = append(out, rs[i])
			out = append(out, tail...)
			out = append(out, rs[i+1])
			out = append(out, tail...)
			i += len(d.pattern)
			continue scan
		}
		out = append(out, rs[i])
		i++
	}
	return string(out)
}

// markBoundaries inserts the marker wherever a letter from boundaryPairs is
// separated from a matching digraph start by one or more non-alphanumeric
// characters. The separators themselves are kept; stripNonKey removes them.
func (e *Encoder) markBoundaries(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs)+2)

	i := 0
	for i < len(rs) {
		out = append(out, rs[i])
		patterns, ok := boundaryPairs[hucase.Lower(rs[i])]
		if !ok {
			i++
			continue
		}
		j := i + 1
		for j < len(rs) && !hucase.IsAlnum(rs[j]) && rs[j] != e.marker {
			j++
		}
		if j == i+1 || j == len(rs) {
			i++
			continue
		}
		if matchesAny(rs[j:], patterns) {
			out = append(out, rs[i+1:j]...)
			out = append(out, e.marker)
			i = j
			continue
		}
		i++
	}
	return string(out)
}

// stripNonKey removes every rune that is neither alphanumeric nor the marker.
func (e *Encoder) stripNonKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if hucase.IsAlnum(r) || r == e.marker {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasNonAlnum(s string) bool {
	for _, r := range s {
		if !hucase.IsAlnum(r) {
			return true
		}
	}
	return false
}

// foldedHasPrefix reports whether the folded rune slice rs starts with p.
func foldedHasPrefix(rs, p []rune) bool {
	if len(rs) < len(p) {
		return false
	}
	for i, r := range p {
		if rs[i] != r {
			return false
		}
	}
	return true
}

// matchesAny reports whether rs starts with one of the lowercase patterns,
// ignoring case. Patterns are tried in order, so callers listing longer
// patterns first get longest-match semantics.
func matchesAny(rs []rune, patterns []string) bool {
	for _, p := range patterns {
		pr := []rune(p)
		if len(rs) < len(pr) {
			continue
		}
		ok := true
		for i, r := range pr {
			if hucase.Lower(rs[i]) != r {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
