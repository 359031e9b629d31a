// Package resolver repairs the vowel-length inversion that some locale
// collations apply to otherwise equal words.
//
// A defective collation ranks words that differ only in vowel length by the
// leftmost length difference, long before short, and only then by case. The
// correct order is the opposite on both counts: the rightmost length
// difference decides, short before long, and within one spelling lowercase
// precedes capitalized precedes uppercase.
//
// Resolve runs over an already sorted batch. Records whose keys are equal
// after folding case and vowel length arrive as one contiguous run, because
// the defective collation still groups them together; the resolver reorders
// each such run in place and leaves everything between runs untouched. The
// repair rank is built from the key alone, never the full line, so records
// with identical keys keep the order the sorter fed them in.
//
// Known limitations: a run whose first and last members rank identically
// under the repair criterion is left in arrival order. This keeps pure
// duplicate runs stable but also means a run that is internally scrambled
// between equal endpoints is not repaired. Such runs do not occur in sorter
// output.
package resolver

import (
	"sort"
	"strings"

	"github.com/coolheart77/zsort/internal/hucase"
	"github.com/coolheart77/zsort/sorter"
)

// Resolve reorders every fold-equal run of recs in place and returns the
// number of runs it changed.
func Resolve(recs []sorter.Record) int {
	changed := 0
	for lo := 0; lo < len(recs); {
		hi := lo + 1
		fold := foldKey(recs[lo].Key)
		for hi < len(recs) && foldKey(recs[hi].Key) == fold {
			hi++
		}
		if hi-lo > 1 && resolveRun(recs[lo:hi]) {
			changed++
		}
		lo = hi
	}
	return changed
}

// resolveRun reorders one fold-equal run. It reports whether the run moved.
func resolveRun(run []sorter.Record) bool {
	type ranked struct {
		rank string
		rec  sorter.Record
	}
	rs := make([]ranked, len(run))
	for i, r := range run {
		rs[i] = ranked{rank: rank(r.Key), rec: r}
	}
	if rs[0].rank == rs[len(rs)-1].rank {
		return false
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].rank > rs[j].rank
	})
	for i := range rs {
		run[i] = rs[i].rec
	}
	return true
}

// rank builds the repair criterion for one key. Sorting ranks in
// descending byte order yields the correct output order.
//
// The length signature is collected right to left so that the rightmost
// length difference is the most significant. S ranks above L byte-wise,
// which puts short vowels first once the descending sort is applied. The
// key follows as tie break: among case variants of one spelling, descending
// byte order is lowercase, capitalized, uppercase. Records with fully equal
// keys rank equal and keep their arrival order.
func rank(k string) string {
	var b strings.Builder
	key := []rune(k)
	for i := len(key) - 1; i >= 0; i-- {
		switch {
		case hucase.IsLongVowel(key[i]):
			b.WriteByte('L')
		case hucase.IsShortVowel(key[i]):
			b.WriteByte('S')
		}
	}
	b.WriteString(k)
	return b.String()
}

// foldKey erases case and vowel length, the two axes a run varies on.
func foldKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		b.WriteRune(hucase.ShortOf(hucase.Lower(r)))
	}
	return b.String()
}
