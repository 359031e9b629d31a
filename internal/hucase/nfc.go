package hucase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// nfcReplacer composes known Hungarian NFD pairs in a single pass.
var nfcReplacer = strings.NewReplacer(
	// Lowercase
	"á", "á", // a + acute        -> á
	"é", "é", // e + acute        -> é
	"í", "í", // i + acute        -> í
	"ó", "ó", // o + acute        -> ó
	"ú", "ú", // u + acute        -> ú
	"ö", "ö", // o + diaeresis    -> ö
	"ü", "ü", // u + diaeresis    -> ü
	"ő", "ő", // o + double acute -> ő
	"ű", "ű", // u + double acute -> ű
	// Uppercase
	"Á", "Á",
	"É", "É",
	"Í", "Í",
	"Ó", "Ó",
	"Ú", "Ú",
	"Ö", "Ö",
	"Ü", "Ü",
	"Ő", "Ő",
	"Ű", "Ű",
)

// ComposeNFC composes decomposed Hungarian vowel sequences into their
// precomposed forms. Known pairs are handled with a single-pass replacer;
// anything else carrying combining marks falls through to full Unicode NFC.
func ComposeNFC(s string) string {
	hasCombiner := false
	for _, r := range s {
		if r >= 0x0300 && r <= 0x036f {
			hasCombiner = true
			break
		}
	}
	if !hasCombiner {
		return s
	}

	s = nfcReplacer.Replace(s)
	for _, r := range s {
		if r >= 0x0300 && r <= 0x036f {
			return norm.NFC.String(s)
		}
	}
	return s
}
