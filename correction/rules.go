package correction

import (
	"strings"

	"github.com/coolheart77/zsort/analyzer"
	"github.com/coolheart77/zsort/internal/hucase"
	"github.com/coolheart77/zsort/sortkey"
)

// ruleFunc inspects one analysis and the word as rewritten by earlier rules.
// It returns the rewritten word and whether it fired.
type ruleFunc func(b *Builder, a analyzer.Analysis, word string) (string, bool)

type rule struct {
	name  string
	apply ruleFunc
}

// rules is the correction heuristic table, in fixed precedence. Each rule
// rewrites the word computed by the previous one.
var rules = []rule{
	{"abstract-sag", ruleAbstractSag},
	{"multiplicative-szor", ruleMultiplicative},
	{"superlative-leg", ruleSuperlative},
	{"adjectival-szeru", ruleSzeru},
	{"measure-nyi", ruleMeasureNyi},
	{"foreign-s-instrumental", ruleForeignS},
	{"numeral-compound", ruleNumeral},
	{"verbal-prefix", ruleVerbalPrefix},
	{"hyphenation-hint", ruleHints},
	{"compound-hint", ruleCompoundHints},
}

// ruleAbstractSag breaks z|ság when a bare-z stem takes the abstract-noun
// suffix: gazság is gaz+ság, not ga+zs+ág.
func ruleAbstractSag(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.HasDeriv(analyzer.DerivAbstract) {
		return "", false
	}
	stem := hucase.ToLower(a.Stem())
	if !strings.HasSuffix(stem, "z") ||
		strings.HasSuffix(stem, "sz") || strings.HasSuffix(stem, "dz") {
		return "", false
	}
	rs, folded := runesOf(word)
	for _, suf := range []string{"zság", "zség"} {
		if i := lastIndexSub(folded, suf); i >= 0 {
			return insertAt(rs, i+1, b.marker()), true
		}
	}
	return "", false
}

// ruleMultiplicative breaks c|szor and z|szor under the multiplicative
// suffix: nyolcszor is nyolc+szor, not nyol+cs+zor.
func ruleMultiplicative(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.HasDeriv(analyzer.DerivMultiple) && !a.HasDeriv(analyzer.DerivOrdMultiple) {
		return "", false
	}
	rs, folded := runesOf(word)
	for i := len(folded) - 2; i >= 1; i-- {
		if folded[i] != 's' || folded[i+1] != 'z' {
			continue
		}
		prev := folded[i-1]
		// A z preceded by s is the tail of an sz, not a bare z.
		if prev == 'c' || (prev == 'z' && (i < 2 || folded[i-2] != 's')) {
			return insertAt(rs, i, b.marker()), true
		}
	}
	return "", false
}

// ruleSuperlative breaks leg|gy... when the superlative prefix meets a
// gy-initial stem: leggyorsabb is leg+gyorsabb.
func ruleSuperlative(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.IsSuperlative() {
		return "", false
	}
	if !strings.HasPrefix(hucase.ToLower(a.Stem()), "gy") {
		return "", false
	}
	rs, folded := runesOf(word)
	if len(folded) < 4 || string(folded[:3]) != "leg" {
		return "", false
	}
	return insertAt(rs, 3, b.marker()), true
}

// ruleSzeru breaks before the -szerű adjectival suffix after c, s or z.
func ruleSzeru(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.HasDeriv(analyzer.DerivLike) {
		return "", false
	}
	rs, folded := runesOf(word)
	i := lastIndexSub(folded, "szerű")
	if i < 1 {
		return "", false
	}
	switch folded[i-1] {
	case 'c', 's', 'z':
		return insertAt(rs, i, b.marker()), true
	}
	return "", false
}

// ruleMeasureNyi breaks n|nyi when a bare-n stem takes the -nyi measure
// suffix: londonnyi is london+nyi.
func ruleMeasureNyi(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.HasInfl(analyzer.InflMeasure) {
		return "", false
	}
	stem := hucase.ToLower(a.Stem())
	if !strings.HasSuffix(stem, "n") || strings.HasSuffix(stem, "ny") {
		return "", false
	}
	rs, folded := runesOf(word)
	i := lastIndexSub(folded, "nnyi")
	if i < 0 {
		return "", false
	}
	return insertAt(rs, i+1, b.marker()), true
}

// ruleForeignS breaks s|sz when a foreign bare-s stem assimilates before the
// instrumental or translative suffix: chipsszel is chips+szel.
func ruleForeignS(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.HasInfl(analyzer.InflInstrumental) && !a.HasInfl(analyzer.InflTranslative) {
		return "", false
	}
	stem := hucase.ToLower(a.Stem())
	if !strings.HasSuffix(stem, "s") ||
		strings.HasSuffix(stem, "sz") || strings.HasSuffix(stem, "cs") || strings.HasSuffix(stem, "zs") {
		return "", false
	}
	rs, folded := runesOf(word)
	i := lastIndexSub(folded, "ssz")
	if i < 0 {
		return "", false
	}
	return insertAt(rs, i+1, b.marker()), true
}

// tyNumerals and zsNumerals are the numeral stems whose compounds attract a
// ty- or zs-initial second member.
var (
	tyNumerals = map[string]bool{"két": true, "kettő": true, "öt": true, "hat": true, "hét": true}
	zsNumerals = map[string]bool{"tíz": true, "száz": true}
)

// ruleNumeral breaks numeral-adjective compounds at the stem boundary when
// the second member starts with a digraph-forming letter sequence.
func ruleNumeral(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	if !a.IsNumeral() {
		return "", false
	}
	stem := hucase.ToLower(a.Stem())
	if stem == "" {
		return "", false
	}
	rs, folded := runesOf(word)
	sr := []rune(stem)
	if len(folded) <= len(sr) || string(folded[:len(sr)]) != stem {
		return "", false
	}
	rest := folded[len(sr):]

	ok := false
	switch {
	case hasPrefix(rest, "cs"):
		ok = true
	case hasPrefix(rest, "zs"):
		ok = zsNumerals[stem]
	case hasPrefix(rest, "s"):
		ok = true
	case hasPrefix(rest, "ly"):
		ok = strings.HasSuffix(stem, "l")
	case hasPrefix(rest, "ny"):
		ok = strings.HasSuffix(stem, "n")
	case hasPrefix(rest, "ty"):
		ok = tyNumerals[stem]
	}
	if !ok {
		return "", false
	}
	return insertAt(rs, len(sr), b.marker()), true
}

// prefixPairs maps a verbal prefix's final letter to the stem-initial
// digraph that merges with it in spelling.
var prefixPairs = map[byte]string{'g': "gy", 'l': "ly", 'n': "ny", 't': "ty"}

// ruleVerbalPrefix breaks after a separable verbal prefix whose final letter
// merges with the stem's initial digraph: meggyújt is meg+gyújt.
func ruleVerbalPrefix(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	pfx := hucase.ToLower(a.VerbalPrefix())
	stem := hucase.ToLower(a.Stem())
	if pfx == "" || stem == "" {
		return "", false
	}
	d, ok := prefixPairs[pfx[len(pfx)-1]]
	if !ok || !strings.HasPrefix(stem, d) {
		return "", false
	}
	rs, folded := runesOf(word)
	pr := []rune(pfx)
	if len(folded) <= len(pr) || !strings.HasPrefix(string(folded), pfx+stem) {
		return "", false
	}
	return insertAt(rs, len(pr), b.marker()), true
}

// ruleHints applies every explicit hyphenation hint, cumulatively.
func ruleHints(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	applied := false
	for _, h := range a.Hints() {
		if next, ok := b.applyHint(word, h); ok {
			word = next
			applied = true
		}
	}
	return word, applied
}

// ruleCompoundHints treats compound-boundary hints as hint fields.
func ruleCompoundHints(b *Builder, a analyzer.Analysis, word string) (string, bool) {
	applied := false
	for _, h := range a.CompoundHints() {
		if next, ok := b.applyHint(word, h); ok {
			word = next
			applied = true
		}
	}
	return word, applied
}

// applyHint substitutes the hint's marked form into the word. When the plain
// hint text does not occur in the word, the hint is shortened to absorb
// morphophonemic alternation at the boundary (a linking vowel, a lengthened
// final vowel): first by one character when the hint ends in a vowel, then
// by two when its last three characters are alphanumeric. An unmatchable
// hint is discarded.
func (b *Builder) applyHint(word, hint string) (string, bool) {
	if next, ok := b.substitute(word, hint); ok {
		return next, true
	}
	hr := []rune(hint)
	if n := len(hr); n > 1 && hucase.IsVowel(hr[n-1]) {
		if next, ok := b.substitute(word, string(hr[:n-1])); ok {
			return next, true
		}
	}
	if n := len(hr); n > 2 && hucase.IsAlnum(hr[n-1]) && hucase.IsAlnum(hr[n-2]) && hucase.IsAlnum(hr[n-3]) {
		if next, ok := b.substitute(word, string(hr[:n-2])); ok {
			return next, true
		}
	}
	return word, false
}

// substitute finds the hint's plain text in the word (ignoring case) and
// re-inserts the hint's markers at the matched position, preserving the
// word's own characters.
func (b *Builder) substitute(word, hint string) (string, bool) {
	plain := sortkey.StripHint(hint)
	marked := sortkey.StripHint(b.enc.MarkHint(hint))
	if marked == plain {
		return "", false
	}

	wr, wf := runesOf(word)
	pr := []rune(hucase.ToLower(plain))
	idx := indexSub(wf, pr)
	if idx < 0 {
		return "", false
	}

	offs := markerOffsets(marked, b.marker())
	out := make([]rune, 0, len(wr)+len(offs))
	prev := 0
	for _, off := range offs {
		out = append(out, wr[prev:idx+off]...)
		out = append(out, b.marker())
		prev = idx + off
	}
	out = append(out, wr[prev:]...)
	return string(out), true
}

// markerOffsets returns the positions of marker runes within marked,
// counted in non-marker runes from the start.
func markerOffsets(marked string, marker rune) []int {
	var offs []int
	pos := 0
	for _, r := range marked {
		if r == marker {
			offs = append(offs, pos)
			continue
		}
		pos++
	}
	return offs
}

// runesOf returns the word's runes and their case-folded shadow.
func runesOf(s string) (rs, folded []rune) {
	rs = []rune(s)
	folded = make([]rune, len(rs))
	for i, r := range rs {
		folded[i] = hucase.Lower(r)
	}
	return rs, folded
}

// hasPrefix reports whether rs starts with the lowercase pattern p.
func hasPrefix(rs []rune, p string) bool {
	pr := []rune(p)
	if len(rs) < len(pr) {
		return false
	}
	for i, r := range pr {
		if rs[i] != r {
			return false
		}
	}
	return true
}

// indexSub returns the first index in rs where sub starts, or -1.
func indexSub(rs, sub []rune) int {
	if len(sub) == 0 {
		return -1
	}
	for i := 0; i+len(sub) <= len(rs); i++ {
		ok := true
		for j, r := range sub {
			if rs[i+j] != r {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// lastIndexSub returns the last index in rs where the lowercase pattern sub
// starts, or -1.
func lastIndexSub(rs []rune, sub string) int {
	sr := []rune(sub)
	for i := len(rs) - len(sr); i >= 0; i-- {
		ok := true
		for j, r := range sr {
			if rs[i+j] != r {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// insertAt returns rs with the marker inserted before rune index i.
func insertAt(rs []rune, i int, marker rune) string {
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:i]...)
	out = append(out, marker)
	out = append(out, rs[i:]...)
	return string(out)
}
