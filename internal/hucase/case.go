// Package hucase provides Hungarian letter classification helpers.
//
// Hungarian has no special-cased letters (unlike Turkic dotless I), so case
// conversion delegates to standard Unicode mapping. What the package adds is
// the long/short vowel pairing that drives secondary collation:
//
//	a/á  e/é  i/í  o/ó  ö/ő  u/ú  ü/ű
//
// Note that ö pairs with ő and ü with ű: the umlaut vowels are themselves
// base letters with long counterparts, distinct from the o/ó and u/ú pairs.
//
// All functions are safe for concurrent use.
package hucase

import (
	"strings"
	"unicode"
)

// shortOf maps every long vowel (both cases) to its short counterpart,
// preserving case.
var shortOf = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ő': 'ö', 'ú': 'u', 'ű': 'ü',
	'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ő': 'Ö', 'Ú': 'U', 'Ű': 'Ü',
}

// longOf is the inverse of shortOf.
var longOf = map[rune]rune{
	'a': 'á', 'e': 'é', 'i': 'í', 'o': 'ó', 'ö': 'ő', 'u': 'ú', 'ü': 'ű',
	'A': 'Á', 'E': 'É', 'I': 'Í', 'O': 'Ó', 'Ö': 'Ő', 'U': 'Ú', 'Ü': 'Ű',
}

// IsLongVowel reports whether r is a long Hungarian vowel (either case).
func IsLongVowel(r rune) bool {
	_, ok := shortOf[r]
	return ok
}

// IsShortVowel reports whether r is a short vowel that has a long
// counterpart (either case).
func IsShortVowel(r rune) bool {
	_, ok := longOf[r]
	return ok
}

// IsVowel reports whether r is any Hungarian vowel, long or short.
func IsVowel(r rune) bool {
	return IsLongVowel(r) || IsShortVowel(r)
}

// ShortOf returns the short counterpart of a long vowel, preserving case.
// Returns r unchanged for every other rune.
func ShortOf(r rune) rune {
	if s, ok := shortOf[r]; ok {
		return s
	}
	return r
}

// IsAlnum reports whether r is a letter or digit.
func IsAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Lower returns the lowercase form of r.
func Lower(r rune) rune {
	return unicode.ToLower(r)
}

// ToLower returns s lowercased rune by rune.
func ToLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Lower(r))
	}
	return b.String()
}

// FoldLength returns s with every long vowel replaced by its short
// counterpart. Case is preserved.
func FoldLength(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(ShortOf(r))
	}
	return b.String()
}
