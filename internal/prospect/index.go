package prospect

import (
	"strings"

	"github.com/sells-group/prospect-matcher/internal/model"
)

// Index is the in-memory Prospect Index: normalized-name lookups for
// structured matching, plus prospect_id lookup for enrichment. Built once
// at load time and treated as shared-immutable during the scan phase.
type Index struct {
	byNormalizedName map[string][]model.Prospect
	byID             map[string]model.Prospect
}

// NewIndex builds an empty index.
func NewIndex() *Index {
	return &Index{
		byNormalizedName: make(map[string][]model.Prospect),
		byID:             make(map[string]model.Prospect),
	}
}

// Add registers a prospect's full set of generated name variants (and their
// reversed forms) in the normalized-name map, and the prospect itself in the
// id map.
func (idx *Index) Add(p model.Prospect) {
	idx.byID[p.ID] = p

	variants := GenerateVariants(p.Name)
	seen := make(map[string]bool)
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			idx.register(v, p)
		}
		rev := ReverseKey(v)
		if rev != v && !seen[rev] {
			seen[rev] = true
			idx.register(rev, p)
		}
	}
}

func (idx *Index) register(key string, p model.Prospect) {
	for _, existing := range idx.byNormalizedName[key] {
		if existing.ID == p.ID {
			return
		}
	}
	idx.byNormalizedName[key] = append(idx.byNormalizedName[key], p)
}

// Lookup returns every prospect registered under a normalized name key.
func (idx *Index) Lookup(normalizedKey string) []model.Prospect {
	return idx.byNormalizedName[normalizedKey]
}

// ByID returns a prospect by its stable id.
func (idx *Index) ByID(id string) (model.Prospect, bool) {
	p, ok := idx.byID[id]
	return p, ok
}

// All returns every loaded prospect, in load order is not guaranteed.
func (idx *Index) All() []model.Prospect {
	out := make([]model.Prospect, 0, len(idx.byID))
	for _, p := range idx.byID {
		out = append(out, p)
	}
	return out
}

// CompanyGuardrailBlocked reports the "Gary Lee Enterprises" degeneracy:
// whether a prospect's company root's tokens are entirely a subset of the
// prospect name's tokens, which disallows text-based company verification
// for that prospect.
func CompanyGuardrailBlocked(prospectName, companyRoot string) bool {
	if companyRoot == "" {
		return false
	}
	nameTokens := tokenSet(Normalize(prospectName))
	for _, t := range strings.Fields(companyRoot) {
		if !nameTokens[t] {
			return false
		}
	}
	return true
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(s) {
		set[t] = true
	}
	return set
}
