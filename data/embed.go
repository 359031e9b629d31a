// Package data embeds the canned analysis table used when no external
// morphological analyzer is configured.
package data

import _ "embed"

//go:embed analyses.txt
var Analyses []byte
