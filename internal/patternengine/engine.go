package patternengine

import (
	goahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/sells-group/prospect-matcher/internal/model"
)

// boundaryClass holds the bytes accepted immediately before/after a hit, in
// addition to whitespace and document boundaries.
var boundaryClass = map[byte]bool{}

func init() {
	for _, c := range []byte(`.,;:!?-()[]{}"'/\|~` + "`" + `@#$%^&*+=<>`) {
		boundaryClass[c] = true
	}
}

// Hit is a single accepted occurrence of a registered pattern in a filing
// body, in raw-text coordinates.
type Hit struct {
	Pattern  model.Pattern
	RawStart int
	RawEnd   int // exclusive
}

// Engine is the built automaton plus the pattern metadata needed to resolve
// a match back to its contributing prospects.
type Engine struct {
	trie       *goahocorasick.Trie
	byText     map[string]model.Pattern
	longestLen int
}

// Build constructs the automaton over the union of registered name and
// company patterns. Patterns shorter than 2 characters are rejected by the
// callers upstream (prospect.GenerateVariants' minimum length) and are not
// re-validated here.
func Build(patterns []model.Pattern) *Engine {
	builder := goahocorasick.NewTrieBuilder()
	byText := make(map[string]model.Pattern, len(patterns))
	longest := 0

	for _, p := range patterns {
		builder.AddString(p.Text)
		byText[p.Text] = p
		if len(p.Text) > longest {
			longest = len(p.Text)
		}
	}

	return &Engine{
		trie:       builder.Build(),
		byText:     byText,
		longestLen: longest,
	}
}

// LongestPattern returns the length of the longest registered pattern text,
// used to size chunk overlap for large filings.
func (e *Engine) LongestPattern() int {
	return e.longestLen
}

// Scan runs the automaton once over a normalized body and returns every
// accepted hit, translated to raw-text coordinates and filtered by the
// boundary prerequisite (the bytes immediately outside the raw span must be
// absent or in the boundary class).
func (e *Engine) Scan(body NormalizedBody) []Hit {
	matches := e.trie.MatchString(body.Normalized)

	var hits []Hit
	for _, m := range matches {
		text := m.MatchString()
		pattern, ok := e.byText[text]
		if !ok {
			continue
		}

		normStart := int(m.Pos())
		normEnd := normStart + len(text)
		if normEnd > len(body.Normalized) {
			continue
		}

		rawStart := body.ToRaw(normStart)
		rawEnd := body.ToRaw(normEnd)
		if !boundaryOK(body.Raw, rawStart, rawEnd) {
			continue
		}

		hits = append(hits, Hit{Pattern: pattern, RawStart: rawStart, RawEnd: rawEnd})
	}
	return hits
}

// ScanDocument scans a raw filing body for every accepted hit, splitting it
// into overlapping chunks first when it exceeds LargeFilingThreshold so
// memory stays bounded on very large filings. Hits found in the overlap
// region of two adjacent chunks are deduplicated by their document-absolute
// raw span.
func (e *Engine) ScanDocument(raw string) []Hit {
	chunks := SplitForScan(raw, e.LongestPattern())
	if len(chunks) == 1 {
		return e.Scan(Normalize(raw))
	}

	seen := make(map[[2]int]bool)
	var hits []Hit
	for _, chunk := range chunks {
		for _, h := range e.Scan(Normalize(chunk.Text)) {
			rebased := Hit{
				Pattern:  h.Pattern,
				RawStart: h.RawStart + chunk.Start,
				RawEnd:   h.RawEnd + chunk.Start,
			}
			key := [2]int{rebased.RawStart, rebased.RawEnd}
			if seen[key] {
				continue
			}
			seen[key] = true
			hits = append(hits, rebased)
		}
	}
	return hits
}

// boundaryOK implements the boundary prerequisite: the raw byte immediately
// before start and immediately after end must be absent (document
// boundary) or in the boundary class.
func boundaryOK(raw string, start, end int) bool {
	if start > 0 && !isBoundaryByte(raw[start-1]) {
		return false
	}
	if end < len(raw) && !isBoundaryByte(raw[end]) {
		return false
	}
	return true
}

func isBoundaryByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return boundaryClass[c]
}
