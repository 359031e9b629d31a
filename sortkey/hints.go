package sortkey

import (
	"strings"

	"github.com/coolheart77/zsort/internal/hucase"
)

// hintBreaks are the explicit break characters an analyzer may place inside
// hyphenation and compound-boundary hints.
const hintBreaks = "-+="

// MarkHint inserts the marker into a hint string at every digraph boundary
// flanked by explicit break characters. The break characters are kept;
// combine with StripHint to obtain the marked bare form.
func (e *Encoder) MarkHint(hint string) string {
	rs := []rune(hint)
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
		for j < len(rs) && strings.ContainsRune(hintBreaks, rs[j]) {
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

// StripHint removes every explicit break character from a hint.
func StripHint(hint string) string {
	if !strings.ContainsAny(hint, hintBreaks) {
		return hint
	}
	var b strings.Builder
	b.Grow(len(hint))
	for _, r := range hint {
		if !strings.ContainsRune(hintBreaks, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
