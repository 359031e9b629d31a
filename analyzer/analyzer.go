// Package analyzer speaks the batch request/response protocol of the
// external Hungarian morphological analyzer.
//
// A request is one word per submission. A response is zero or more lines per
// word, each of the form
//
//	<analyzed-surface><TAB><tag><TAB><tag>...
//
// where tags are short mnemonic codes, either bare (sup) or key:value
// (st:kasza, d:sag). One word may legitimately receive several differing
// analyses; callers must process every line in arrival order.
//
// The channel is batch-only: every Submit happens before Close, and
// Responses may only be read after Close. The analyzer is not guaranteed to
// flush interleaved responses, so partial reads before closure are unsafe.
//
// Known limitations:
//
//   - Tag lines missing fields for a given heuristic are not errors; the
//     heuristic simply does not fire.
//   - A non-zero analyzer exit is fatal to the whole run.
package analyzer

import (
	"fmt"
	"strings"
)

// Tag keys of the analyzer vocabulary.
const (
	TagStem     = "st"   // st:<stem>, stem span of the analysis
	TagPOS      = "pos"  // pos:<code>, part of speech
	TagDeriv    = "d"    // d:<id>, derivational suffix identifier
	TagInfl     = "i"    // i:<id>, inflectional suffix identifier
	TagSuper    = "sup"  // superlative prefix present
	TagPrefix   = "pfx"  // pfx:<prefix>, separable verbal prefix
	TagHyphen   = "hyph" // hyph:<hint>, explicit hyphenation hint
	TagCompound = "cmp"  // cmp:<hint>, compound-boundary hint
)

// Part-of-speech codes.
const (
	POSNoun       = "n"
	POSProperNoun = "prop"
	POSNumeral    = "num"
	POSVerb       = "v"
	POSAdjective  = "adj"
)

// Derivation identifiers referenced by the correction heuristics.
const (
	DerivAbstract    = "sag"    // -ság/-ség abstract noun
	DerivMultiple    = "szor"   // -szor/-szer/-ször multiplicative
	DerivOrdMultiple = "szoros" // ordinal multiplicative
	DerivLike        = "szeru"  // -szerű adjectival
)

// Inflection identifiers referenced by the correction heuristics.
const (
	InflMeasure      = "nyi" // -nyi measure
	InflInstrumental = "ins" // -val/-vel instrumental
	InflTranslative  = "tra" // -vá/-vé translative
)

// Tag is one mnemonic code from a response line.
type Tag struct {
	Key   string
	Value string // empty for bare tags
}

// String returns the wire form of the tag.
func (t Tag) String() string {
	if t.Value == "" {
		return t.Key
	}
	return t.Key + ":" + t.Value
}

// Analysis is one response line: an analyzed surface form with its tags.
type Analysis struct {
	Surface string
	Tags    []Tag
}

// Parse decodes one response line. Blank lines yield ok=false.
func Parse(line string) (Analysis, bool) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Analysis{}, false
	}
	fields := strings.Split(line, "\t")
	a := Analysis{Surface: fields[0]}
	for _, f := range fields[1:] {
		if f == "" {
			continue
		}
		if k, v, found := strings.Cut(f, ":"); found {
			a.Tags = append(a.Tags, Tag{Key: k, Value: v})
		} else {
			a.Tags = append(a.Tags, Tag{Key: f})
		}
	}
	return a, true
}

// String returns the wire form of the analysis.
func (a Analysis) String() string {
	var b strings.Builder
	b.WriteString(a.Surface)
	for _, t := range a.Tags {
		b.WriteByte('\t')
		b.WriteString(t.String())
	}
	return b.String()
}

// first returns the value of the first tag with the given key.
func (a Analysis) first(key string) (string, bool) {
	for _, t := range a.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// all returns the values of every tag with the given key, in order.
func (a Analysis) all(key string) []string {
	var vals []string
	for _, t := range a.Tags {
		if t.Key == key {
			vals = append(vals, t.Value)
		}
	}
	return vals
}

// Stem returns the tagged stem, or "" when the line carries none.
func (a Analysis) Stem() string {
	v, _ := a.first(TagStem)
	return v
}

// POS returns the part-of-speech code, or "" when untagged.
func (a Analysis) POS() string {
	v, _ := a.first(TagPOS)
	return v
}

// IsProperNoun reports whether the line is tagged as a proper noun.
func (a Analysis) IsProperNoun() bool { return a.POS() == POSProperNoun }

// IsNumeral reports whether the line is tagged as a numeral adjective.
func (a Analysis) IsNumeral() bool { return a.POS() == POSNumeral }

// HasDeriv reports whether the line carries the given derivation tag.
func (a Analysis) HasDeriv(id string) bool {
	for _, v := range a.all(TagDeriv) {
		if v == id {
			return true
		}
	}
	return false
}

// HasInfl reports whether the line carries the given inflection tag.
func (a Analysis) HasInfl(id string) bool {
	for _, v := range a.all(TagInfl) {
		if v == id {
			return true
		}
	}
	return false
}

// IsSuperlative reports whether the superlative prefix tag is present.
func (a Analysis) IsSuperlative() bool {
	_, ok := a.first(TagSuper)
	return ok
}

// VerbalPrefix returns the separable verbal prefix, or "".
func (a Analysis) VerbalPrefix() string {
	v, _ := a.first(TagPrefix)
	return v
}

// Hints returns every explicit hyphenation hint on the line, in order.
func (a Analysis) Hints() []string { return a.all(TagHyphen) }

// CompoundHints returns every compound-boundary hint on the line, in order.
func (a Analysis) CompoundHints() []string { return a.all(TagCompound) }

// ErrNotClosed is returned when Responses is called before Close.
var ErrNotClosed = fmt.Errorf("analyzer: responses read before channel close")
