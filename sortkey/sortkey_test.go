package sortkey

import (
	"strings"
	"testing"
)

// Tests use the visible marker so expected keys stay readable.
func testEncoder() *Encoder {
	return NewEncoder(VisibleMarker)
}

func TestEncodeDoublings(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ssz", "hosszú", "hoszszú"},
		{"ssz word start", "ssz", "szsz"},
		{"ccs", "loccsan", "locscsan"},
		{"ddz", "eddze", "edzdze"},
		{"ddzs", "briddzsel", "bridzsdzsel"},
		{"ggy", "meggy", "megygy"},
		{"lly", "gallyak", "galylyak"},
		{"nny", "könnyű", "könynyű"},
		{"tty", "fütty", "fütyty"},
		{"zzs", "rizzsel", "rizszsel"},
		{"ssz blocked after c", "acssz", "acssz"},
		{"ssz blocked after z", "azssz", "azssz"},
		{"zzs blocked after d", "adzzs", "adzzs"},
		{"zzs blocked after s", "aszzs", "aszzs"},
		{"mixed case", "Hosszú", "Hoszszú"},
		{"upper case", "HOSSZÚ", "HOSZSZÚ"},
		{"two in one word", "hosszabb össze", "hoszszabböszsze"},
		{"no doubling", "kaszab", "kaszab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := enc.Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeBoundaryMarks(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"s-z", "kas-zab", "kas|zab"},
		{"s-sz", "kis-szoba", "kis|szoba"},
		{"g-y", "vasárnap-g-yere", "vasárnapg|yere"},
		{"g-gy", "leg-gyorsabb", "leg|gyorsabb"},
		{"n-ny", "vékony-nyak", "vékonynyak"},
		{"t-ty", "hat-tyúk", "hat|tyúk"},
		{"z-s", "gaz-ság", "gaz|ság"},
		{"c-s", "harminc-sor", "harminc|sor"},
		{"multiple separators", "kas--zab", "kas|zab"},
		{"no pair at boundary", "kas-ab", "kasab"},
		{"separator at end", "kas-", "kas"},
		{"no separator no mark", "kaszab", "kaszab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := enc.Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeStripsNonAlnum(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	tests := []struct {
		in   string
		want string
	}{
		{"alma, körte", "almakörte"},
		{"  12 fő  ", "12fő"},
		{"(zárójel)", "zárójel"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := enc.Encode(tt.in); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeIdentityWithoutDigraphs(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	// For words with no digraph substring the key is the input minus
	// non-alphanumeric characters.
	for _, w := range []string{"alma", "Béla", "körte", "bot", "12ab", "fá-k"} {
		want := enc.stripNonKey(w)
		if got := enc.Encode(w); got != want {
			t.Errorf("Encode(%q) = %q, want %q", w, got, want)
		}
	}
}

func TestEncodeIdempotentOnMarkerFreeOutput(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	for _, w := range []string{"hosszú", "kaszab", "meggy", "alma, körte", "rizzsel"} {
		once := enc.Encode(w)
		if strings.ContainsRune(once, enc.Marker()) {
			continue
		}
		if twice := enc.Encode(once); twice != once {
			t.Errorf("Encode(Encode(%q)): %q != %q", w, twice, once)
		}
	}
}

func TestEncodePreservesCorrectionMarkers(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"marker passes through", "kas|zab", "kas|zab"},
		{"marker blocks doubling expansion", "leg|gyorsabb", "leg|gyorsabb"},
		{"marker is no separator for re-marking", "kas|zab!", "kas|zab"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := enc.Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContainsDigraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"kaszab", true},
		{"KASZAB", true},
		{"gyors", true},
		{"madzag", true},
		{"alma", false},
		{"bot", false},
		{"", false},
		{"Szeged", true},
		{"körte", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := ContainsDigraph(tt.in); got != tt.want {
			t.Errorf("ContainsDigraph(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMarkHint(t *testing.T) {
	t.Parallel()

	enc := testEncoder()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"s-z boundary", "kas-zab", "kas-|zab"},
		{"g-gy boundary", "leg-gyors", "leg-|gyors"},
		{"compound plus", "gaz+ság", "gaz+|ság"},
		{"no pair", "al-ma", "al-ma"},
		{"no breaks", "kaszab", "kaszab"},
		{"trailing break", "kasza-", "kasza-"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := enc.MarkHint(tt.in); got != tt.want {
				t.Errorf("MarkHint(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"kas-zab", "kaszab"},
		{"gaz+ság", "gazság"},
		{"a=b-c", "abc"},
		{"kaszab", "kaszab"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := StripHint(tt.in); got != tt.want {
			t.Errorf("StripHint(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
