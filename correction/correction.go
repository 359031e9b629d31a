// Package correction turns morphological analyzer responses into a word
// correction map.
//
// A correction is the surface word with a zero-width disambiguation marker
// inserted at one or more digraph boundaries, so that the sort key encoder
// reads the letters the morphology dictates rather than the spelling's
// default digraph reading (kas|zab is kas+zab, not ka+sz+ab).
//
// Corrections come from an ordered table of heuristic rules, each a pure
// (analysis, word) -> (word, applied) function. The rules run as a fold over
// the current word, in fixed precedence, so later rules see earlier rules'
// markers. A rule whose tag pattern is absent simply does not fire.
//
// Map mutation follows last-tagged-proper-noun-wins, otherwise
// first-nonempty-correction-wins: the first differing correction for a word
// is kept, and a later proper-noun analysis without a correction of its own
// revokes a previously recorded break.
package correction

import (
	"github.com/coolheart77/zsort/analyzer"
	"github.com/coolheart77/zsort/sortkey"
)

// Map holds word -> corrected word. Immutable once the analysis phase has
// closed; readers in later phases need no locking.
type Map map[string]string

// Lookup returns the corrected form of word, if any.
func (m Map) Lookup(word string) (string, bool) {
	c, ok := m[word]
	return c, ok
}

// Builder accumulates analyzer responses into a correction map.
type Builder struct {
	enc *sortkey.Encoder
	m   Map
}

// NewBuilder returns a Builder inserting the encoder's marker rune.
func NewBuilder(enc *sortkey.Encoder) *Builder {
	return &Builder{enc: enc, m: make(Map)}
}

// Add processes one analyzer response line.
func (b *Builder) Add(a analyzer.Analysis) {
	word := a.Surface
	for _, r := range rules {
		if next, ok := r.apply(b, a, word); ok {
			word = next
		}
	}
	b.record(a.Surface, word, a.IsProperNoun())
}

// Build processes a full response batch and returns the finished map.
// The responses must be the complete batch: later lines for the same word
// can override earlier ones, so a partial batch yields a wrong map.
func (b *Builder) Build(responses []analyzer.Analysis) Map {
	for _, a := range responses {
		b.Add(a)
	}
	return b.Map()
}

// Map returns the accumulated correction map.
func (b *Builder) Map() Map { return b.m }

// record applies the map mutation rule for one processed response line.
func (b *Builder) record(surface, corrected string, proper bool) {
	if corrected != surface {
		if _, ok := b.m[surface]; !ok {
			b.m[surface] = corrected
		}
		return
	}
	if proper {
		if prev, ok := b.m[surface]; ok && prev != surface {
			// The proper-noun reading overrides the earlier break
			// decision: record the unmodified form.
			b.m[surface] = surface
		}
	}
}

func (b *Builder) marker() rune { return b.enc.Marker() }
