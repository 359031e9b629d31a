package hucase

import "testing"

func TestVowelPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		long  rune
		short rune
	}{
		{"a", 'á', 'a'},
		{"e", 'é', 'e'},
		{"i", 'í', 'i'},
		{"o", 'ó', 'o'},
		{"umlaut o", 'ő', 'ö'},
		{"u", 'ú', 'u'},
		{"umlaut u", 'ű', 'ü'},
		{"upper a", 'Á', 'A'},
		{"upper umlaut o", 'Ő', 'Ö'},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !IsLongVowel(tt.long) {
				t.Errorf("IsLongVowel(%q) = false, want true", tt.long)
			}
			if IsLongVowel(tt.short) {
				t.Errorf("IsLongVowel(%q) = true, want false", tt.short)
			}
			if !IsShortVowel(tt.short) {
				t.Errorf("IsShortVowel(%q) = false, want true", tt.short)
			}
			if got := ShortOf(tt.long); got != tt.short {
				t.Errorf("ShortOf(%q) = %q, want %q", tt.long, got, tt.short)
			}
		})
	}
}

func TestShortOfPassthrough(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'b', 'z', '1', ' ', 'ö', 'a'} {
		if got := ShortOf(r); got != r {
			t.Errorf("ShortOf(%q) = %q, want unchanged", r, got)
		}
	}
}

func TestFoldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"zsáner", "zsaner"},
		{"zsanér", "zsaner"},
		{"ZSÁNÉR", "ZSANER"},
		{"hűtő", "hütö"},
		{"kutya", "kutya"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := FoldLength(tt.in); got != tt.want {
			t.Errorf("FoldLength(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsAlnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'ű', true},
		{'Ő', true},
		{'9', true},
		{'-', false},
		{' ', false},
		{',', false},
		{'‌', false},
	}

	for _, tt := range tests {
		tt := tt
		if got := IsAlnum(tt.r); got != tt.want {
			t.Errorf("IsAlnum(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"precomposed passthrough", "zsákutca", "zsákutca"},
		{"acute", "zsáner", "zsáner"},
		{"double acute", "hűtő", "hűtő"},
		{"uppercase", "Üveg", "Üveg"},
		{"no marks", "plain ascii", "plain ascii"},
		{"mixed", "idő is érték", "idő is érték"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeNFC(tt.in); got != tt.want {
				t.Errorf("ComposeNFC(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
