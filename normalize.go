package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes compatibility forms and drops combining marks,
// so "Café" and "cafe" normalize to the same bytes.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeText folds text for robust substring matching: trim,
// lowercase, decompose, strip diacritics. Total and idempotent; empty
// input stays empty.
func NormalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return folded
}
