// Package prospect builds the in-memory prospect index and pattern set that
// the text and structured matchers scan against.
package prospect

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)
var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases, strips diacritics via canonical decomposition,
// replaces non-word characters with spaces, collapses whitespace, and trims.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = stripDiacritics(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// stripDiacritics decomposes runes and drops combining marks.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// personalSuffixes are stripped from the trailing token of a name, in order.
var personalSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
	"md": true, "phd": true, "esq": true,
}

// StripPersonalSuffix removes a trailing personal suffix token (jr, sr,
// ii, iii, iv, md, phd, esq) from an already-normalized name, followed by
// whitespace collapse. Applying it twice is idempotent: the second call is
// a no-op once the suffix is gone.
func StripPersonalSuffix(normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) < 2 {
		return normalized
	}
	last := tokens[len(tokens)-1]
	if personalSuffixes[last] {
		return strings.Join(tokens[:len(tokens)-1], " ")
	}
	return normalized
}

// legalSuffixes are stripped from the trailing tokens of a company name to
// find its matchable root. Multi-word suffixes ("l p", "and co") are matched
// as a run of trailing tokens.
var legalSuffixes = [][]string{
	{"inc"}, {"incorporated"}, {"corp"}, {"corporation"}, {"company"}, {"co"},
	{"llc"}, {"ltd"}, {"limited"}, {"plc"}, {"lp"}, {"l", "p"},
	{"group"}, {"holdings"}, {"enterprise"}, {"enterprises"},
	{"partner"}, {"partners"}, {"partnership"}, {"and", "co"},
}

// CompanyRoot strips a trailing legal suffix from an already-normalized
// company name and returns the root. Returns "" if the root would be
// shorter than 3 characters.
func CompanyRoot(normalized string) string {
	tokens := strings.Fields(normalized)
	for _, suffix := range legalSuffixes {
		if len(tokens) <= len(suffix) {
			continue
		}
		tail := tokens[len(tokens)-len(suffix):]
		if equalTokens(tail, suffix) {
			tokens = tokens[:len(tokens)-len(suffix)]
			break
		}
	}
	root := strings.Join(tokens, " ")
	if len(root) < 3 {
		return ""
	}
	return root
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
