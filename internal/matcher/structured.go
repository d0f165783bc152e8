// Package matcher fuses structured (form-parser-derived person names) and
// text (pattern-engine) evidence into a single Match Record per
// (prospect, filing), applying the confidence matrix and company
// cross-check along the way.
package matcher

import (
	"strings"

	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/prospect"
)

// StructuredMatch is one prospect resolved out of a single filing-person
// name by the structured probe cascade.
type StructuredMatch struct {
	Prospect        model.Prospect
	Submethod       model.StructuredSubmethod
	UncertainMatch  bool
	UncertainReason string
}

// ProbeStructured runs the ordered probe cascade against a raw filing
// person name and returns, for every prospect resolved, the first-winning
// submethod (probes run in priority order and a prospect already resolved
// by an earlier probe is not re-recorded by a later one).
func ProbeStructured(idx *prospect.Index, rawFilingName string) []StructuredMatch {
	normalized := prospect.Normalize(rawFilingName)
	if normalized == "" {
		return nil
	}
	tokens := strings.Fields(normalized)

	seen := map[string]bool{}
	var results []StructuredMatch

	try := func(key string, submethod model.StructuredSubmethod, uncertain bool, reason string) {
		if key == "" {
			return
		}
		for _, p := range idx.Lookup(key) {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			results = append(results, StructuredMatch{
				Prospect:        p,
				Submethod:       submethod,
				UncertainMatch:  uncertain,
				UncertainReason: reason,
			})
		}
	}

	// 1. exact key.
	try(normalized, model.SubmethodExact, false, "")

	n := len(tokens)
	if n >= 2 {
		reordered := tokens[n-1] + " " + strings.Join(tokens[:n-1], " ")
		if n == 2 {
			// 3. 2-token filing names: token swap.
			try(reordered, model.SubmethodNameSwap, false, "")
		} else {
			// 2. SEC-style last-first-middle reorder.
			try(reordered, model.SubmethodNameReorder, false, "")
		}
	}

	if n == 3 {
		// 4. 3-token filing names: drop middle, or first+middle only.
		try(tokens[1]+" "+tokens[0], model.SubmethodNameReorderDropMiddle, false, "")
		try(tokens[1]+" "+tokens[2], model.SubmethodFirstMiddleOnly, true,
			"Matched First+Middle only; filing last name differs from prospect last name")
	}

	// 5. suffix-stripped re-lookup.
	stripped := prospect.StripPersonalSuffix(normalized)
	if stripped != normalized {
		try(stripped, model.SubmethodSuffixRemoved, false, "")
	}

	return results
}
