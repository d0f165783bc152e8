package validator

import (
	"regexp"
	"strings"
)

var longWordRe = regexp.MustCompile(`\b[a-z]{4,}\b`)

// EnglishWordCount counts matches of \b[a-z]{4,}\b in a lowercase context
// window, used by both the English-context gate and the FP risk scorer.
func EnglishWordCount(context string) int {
	return len(longWordRe.FindAllString(strings.ToLower(context), -1))
}

// EnglishContextOK enforces the per-class minimum count of 4+ letter
// English-looking words in the ±50-byte window around a hit.
func EnglishContextOK(context string, min int) bool {
	return EnglishWordCount(context) >= min
}

// EncodedRegionOK rejects hits embedded in base64/hex/binary-looking
// regions: the non-plain-text character fraction in the ±100-byte context
// must stay at or below 30%, and — for contexts over 50 bytes — at least 2
// tokens longer than 2 characters must appear in the fixed common-English
// vocabulary.
func EncodedRegionOK(context string) bool {
	if context == "" {
		return true
	}

	nonPlain := 0
	for _, r := range context {
		if !isPlainTextRune(r) {
			nonPlain++
		}
	}
	if float64(nonPlain)/float64(len([]rune(context))) > 0.30 {
		return false
	}

	if len(context) <= 50 {
		return true
	}

	hits := 0
	for _, tok := range strings.Fields(strings.ToLower(context)) {
		tok = strings.Trim(tok, ".,;:!?()\"'")
		if len(tok) > 2 && commonVocabulary[tok] {
			hits++
		}
	}
	return hits >= 2
}

func isPlainTextRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '.' || r == ',' || r == ';' || r == ':' ||
		r == '!' || r == '?' || r == '(' || r == ')' || r == '-' ||
		r == '\'' || r == '"':
		return true
	}
	return false
}

// SpaceBoundaryOK enforces the space-boundary gate: the raw bytes
// immediately before start and at end must be whitespace, tab, newline, or
// (trailing side only) comma/period, or a document boundary.
func SpaceBoundaryOK(raw string, start, end int) bool {
	if start > 0 {
		c := raw[start-1]
		if !(c == ' ' || c == '\t' || c == '\n' || c == '\r') {
			return false
		}
	}
	if end < len(raw) {
		c := raw[end]
		if !(c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' || c == '.') {
			return false
		}
	}
	return true
}

// allowedAdjacentTokens is the closed allow-list of titles/prepositions
// that may legitimately precede or follow a name without implying the
// prospect is embedded in a longer name.
var allowedAdjacentTokens = buildVocabularySet(
	"mr", "ms", "mrs", "dr", "prof", "ceo", "cfo", "coo", "cto", "cio",
	"cmo", "cpo", "cso", "evp", "svp", "vp", "avp", "director", "president",
	"chairman", "chair", "executive", "officer", "manager", "partner",
	"founder", "chief", "senior", "junior", "managing", "general", "hon",
	"honorable", "judge", "justice", "by", "from", "to", "of", "and", "or",
	"the", "a", "an", "name", "signed", "filed", "reported", "pursuant",
)

var capitalizedWordRe = regexp.MustCompile(`^[A-Z][a-zA-Z]*$`)

// AdjacentNameTokenOK implements the adjacent-name-token gate (names only):
// looks 25 bytes either side of the raw hit for a capitalized token
// separated from the hit only by whitespace; if found and not on the
// allow-list, the hit is rejected as likely embedded in a longer name.
func AdjacentNameTokenOK(raw string, start, end int) bool {
	return sideOK(raw, start, -25, true) && sideOK(raw, end, 25, false)
}

func sideOK(raw string, pos, span int, left bool) bool {
	var window string
	if left {
		lo := pos + span
		if lo < 0 {
			lo = 0
		}
		window = raw[lo:pos]
	} else {
		hi := pos + span
		if hi > len(raw) {
			hi = len(raw)
		}
		window = raw[pos:hi]
	}

	// The token must be separated from the hit boundary only by
	// whitespace (no intervening punctuation).
	trimmed := strings.TrimRight(window, " \t")
	if left {
		if len(window)-len(trimmed) == 0 {
			return true // no whitespace gap, not "adjacent" in the gate's sense
		}
		fields := strings.Fields(trimmed)
		if len(fields) == 0 {
			return true
		}
		tok := fields[len(fields)-1]
		return tokenAllowed(tok)
	}

	trimmedLeft := strings.TrimLeft(window, " \t")
	if len(window)-len(trimmedLeft) == 0 {
		return true
	}
	fields := strings.Fields(trimmedLeft)
	if len(fields) == 0 {
		return true
	}
	tok := fields[0]
	return tokenAllowed(tok)
}

func tokenAllowed(tok string) bool {
	if !capitalizedWordRe.MatchString(tok) {
		return true // not a capitalized alphabetic token at all
	}
	return allowedAdjacentTokens[strings.ToLower(tok)]
}
