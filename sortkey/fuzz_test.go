package sortkey

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/coolheart77/zsort/internal/hucase"
)

func FuzzEncode(f *testing.F) {
	f.Add("hosszú")
	f.Add("kas-zab")
	f.Add("alma, körte")
	f.Add("")
	f.Add("briddzsel fütty")
	f.Add("ka|szab")

	enc := NewEncoder(VisibleMarker)

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		key := enc.Encode(s)

		for _, r := range key {
			if !hucase.IsAlnum(r) && r != enc.Marker() {
				t.Fatalf("Encode(%q) = %q contains forbidden rune %q", s, key, r)
			}
		}

		// Idempotence holds for marker-free keys with no residual
		// simplified doubling (expansion of s+sz can itself spell ssz).
		if !strings.ContainsRune(key, enc.Marker()) && !containsDoubling(key) {
			if again := enc.Encode(key); again != key {
				t.Fatalf("Encode not idempotent on marker-free key: %q -> %q", key, again)
			}
		}
	})
}

// containsDoubling reports whether the folded form of s still spells a
// simplified doubled digraph or trigraph.
func containsDoubling(s string) bool {
	folded := hucase.ToLower(s)
	for _, p := range []string{"ddzs", "ccs", "ddz", "ggy", "lly", "nny", "ssz", "tty", "zzs"} {
		if strings.Contains(folded, p) {
			return true
		}
	}
	return false
}
