package model

// Prospect is a person of fundraising interest, optionally tied to an
// employer. Immutable once loaded — the matching pipeline never mutates
// a Prospect after the index is built.
type Prospect struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
}

// PatternKind distinguishes a name pattern from a company pattern in the
// text-matching engine.
type PatternKind string

const (
	PatternKindName    PatternKind = "name"
	PatternKindCompany PatternKind = "company"
)

// PatternVariation records one way a Pattern was derived: which prospect
// owns it, what kind it is, and (for names) the first/last token pair that
// produced it.
type PatternVariation struct {
	ProspectID string
	Kind       PatternKind
	First      string // names only
	Last       string // names only
	Root       string // companies only: suffix-stripped root
}

// Pattern is a single lowercase, whitespace-normalized string registered in
// the text-matching automaton. Several prospects may share the same surface
// pattern (e.g. two prospects both named "John Smith"), so a Pattern carries
// every PatternVariation that produced it.
type Pattern struct {
	Text       string
	Kind       PatternKind
	Variations []PatternVariation
}
