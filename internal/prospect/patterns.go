package prospect

import (
	"strings"

	"github.com/sells-group/prospect-matcher/internal/model"
)

// BuildPatterns walks every loaded prospect and emits the patterns that the
// Pattern Engine's automaton should be built over: one "first last" pattern
// per unique first/last token pair (name patterns), and one suffix-stripped
// company root pattern per prospect with an employer (company patterns).
// Patterns sharing the same surface text across prospects are merged into a
// single entry carrying every contributing variation.
func BuildPatterns(prospects []model.Prospect) []model.Pattern {
	byText := make(map[string]*model.Pattern)

	order := func(text string, kind model.PatternKind) *model.Pattern {
		key := string(kind) + "\x00" + text
		p, ok := byText[key]
		if !ok {
			p = &model.Pattern{Text: text, Kind: kind}
			byText[key] = p
		}
		return p
	}

	for _, prospect := range prospects {
		pairs := namePairs(prospect.Name)
		for _, pair := range pairs {
			text := pair.first + " " + pair.last
			p := order(text, model.PatternKindName)
			p.Variations = append(p.Variations, model.PatternVariation{
				ProspectID: prospect.ID,
				Kind:       model.PatternKindName,
				First:      pair.first,
				Last:       pair.last,
			})
		}

		if prospect.Company == "" {
			continue
		}
		root := CompanyRoot(Normalize(prospect.Company))
		if root == "" {
			continue
		}
		if CompanyGuardrailBlocked(prospect.Name, root) {
			continue
		}
		p := order(root, model.PatternKindCompany)
		p.Variations = append(p.Variations, model.PatternVariation{
			ProspectID: prospect.ID,
			Kind:       model.PatternKindCompany,
			Root:       root,
		})
	}

	out := make([]model.Pattern, 0, len(byText))
	for _, p := range byText {
		out = append(out, *p)
	}
	return out
}

type firstLast struct {
	first, last string
}

// namePairs returns every unique first/last token pair (both >=2 chars)
// across a prospect's generated variants.
func namePairs(rawName string) []firstLast {
	seen := make(map[firstLast]bool)
	var out []firstLast
	for _, v := range GenerateVariants(rawName) {
		tokens := strings.Fields(v)
		if len(tokens) < 2 {
			continue
		}
		pair := firstLast{first: tokens[0], last: tokens[len(tokens)-1]}
		if len(pair.first) < 2 || len(pair.last) < 2 {
			continue
		}
		if !seen[pair] {
			seen[pair] = true
			out = append(out, pair)
		}
	}
	return out
}
