package matcher

import (
	"regexp"
	"strings"

	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/patternengine"
	"github.com/sells-group/prospect-matcher/internal/validator"
)

// maxStoredPositions bounds per-filing memory: at most 3 snippets and
// positions retained per prospect per pattern kind.
const maxStoredPositions = 3

// Position is a raw-text [Start, End) span of an accepted pattern hit.
type Position struct {
	Start, End int
}

// TextEvidence accumulates the validated name and company hits the Pattern
// Engine found for a single prospect within one filing body.
type TextEvidence struct {
	NamePositions    []Position
	CompanyPositions []Position
}

func (e *TextEvidence) addName(pos Position) {
	if len(e.NamePositions) >= maxStoredPositions {
		return
	}
	e.NamePositions = append(e.NamePositions, pos)
}

func (e *TextEvidence) addCompany(pos Position) {
	if len(e.CompanyPositions) >= maxStoredPositions {
		return
	}
	e.CompanyPositions = append(e.CompanyPositions, pos)
}

// CollectTextEvidence runs every pattern-engine hit through the Adaptive
// Validator and groups surviving hits by owning prospect id. A single hit
// can contribute to several prospects when more than one prospect shares
// the same surface pattern (e.g. two "John Smith" prospects).
func CollectTextEvidence(raw string, hits []patternengine.Hit) map[string]*TextEvidence {
	byProspect := make(map[string]*TextEvidence)

	get := func(id string) *TextEvidence {
		e, ok := byProspect[id]
		if !ok {
			e = &TextEvidence{}
			byProspect[id] = e
		}
		return e
	}

	for _, hit := range hits {
		pos := Position{Start: hit.RawStart, End: hit.RawEnd}
		for _, v := range hit.Pattern.Variations {
			switch v.Kind {
			case model.PatternKindName:
				if ok, _ := validator.ValidateName(raw, hit.RawStart, hit.RawEnd, v.First, v.Last); ok {
					get(v.ProspectID).addName(pos)
				}
			case model.PatternKindCompany:
				wordCount := len(strings.Fields(hit.Pattern.Text))
				if ok, _ := validator.ValidateCompany(raw, hit.RawStart, hit.RawEnd, hit.Pattern.Text, wordCount); ok {
					get(v.ProspectID).addCompany(pos)
				}
			}
		}
	}

	return byProspect
}

// ClosestPair finds the name/company position pair with the smallest raw
// byte distance. ok is false when either side has no evidence.
func (e *TextEvidence) ClosestPair() (namePos, companyPos Position, distance int, ok bool) {
	best := -1
	for _, n := range e.NamePositions {
		for _, c := range e.CompanyPositions {
			d := n.Start - c.Start
			if d < 0 {
				d = -d
			}
			if best == -1 || d < best {
				best = d
				namePos, companyPos = n, c
			}
		}
	}
	if best == -1 {
		return Position{}, Position{}, 0, false
	}
	return namePos, companyPos, best, true
}

// DistanceCategory buckets a name/company byte distance by fixed
// thresholds: {<=4000: HIGH, <=8000: MEDIUM, <=50000: LOW, else TOO_FAR}.
func DistanceCategory(distance int) model.DistanceCategory {
	switch {
	case distance <= 4000:
		return model.DistanceHigh
	case distance <= 8000:
		return model.DistanceMedium
	case distance <= 50000:
		return model.DistanceLow
	default:
		return model.DistanceTooFar
	}
}

var snippetWhitespaceRe = regexp.MustCompile(`\s+`)

const snippetRadius = 60

// Snippet extracts a ±60-byte raw-text window around pos, normalizes
// whitespace, and prepends/appends an ellipsis on each side where the
// window stops short of the document's start or end.
func Snippet(raw string, pos Position) string {
	lo := pos.Start - snippetRadius
	truncatedLeft := lo > 0
	if lo < 0 {
		lo = 0
	}
	hi := pos.End + snippetRadius
	truncatedRight := hi < len(raw)
	if hi > len(raw) {
		hi = len(raw)
	}

	text := snippetWhitespaceRe.ReplaceAllString(strings.TrimSpace(raw[lo:hi]), " ")
	if truncatedLeft {
		text = "..." + text
	}
	if truncatedRight {
		text = text + "..."
	}
	return text
}
