package matcher

import (
	"strings"

	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/prospect"
)

// CrossCheckCompany implements the company cross-check cascade: a hard
// FP defense run once per structured match. normalizedRawText is the
// tag-stripped filing body run through prospect.Normalize, computed once per
// filing and shared across every prospect checked against it.
func CrossCheckCompany(p model.Prospect, pf *model.ParsedFiling, normalizedRawText string) (bool, model.CompanyCheckMethod) {
	if p.Company == "" {
		return false, model.CompanyCheckNoCompanyOnProspect
	}

	root := prospect.CompanyRoot(prospect.Normalize(p.Company))
	if root == "" {
		return false, model.CompanyCheckNotFound
	}

	if prospect.CompanyGuardrailBlocked(p.Name, root) {
		return false, model.CompanyCheckRootOverlapsName
	}

	for _, name := range filingEntityNames(pf) {
		entRoot := prospect.CompanyRoot(prospect.Normalize(name))
		if entRoot == "" {
			continue
		}
		if strings.Contains(entRoot, root) || strings.Contains(root, entRoot) {
			return true, model.CompanyCheckStructuredIssuer
		}
	}

	if containsToken(normalizedRawText, root) {
		return true, model.CompanyCheckTextFound
	}

	return false, model.CompanyCheckNotFound
}

func filingEntityNames(pf *model.ParsedFiling) []string {
	var out []string
	for _, e := range []*model.EntityRef{pf.Envelope.Issuer, pf.Envelope.Filer, pf.Envelope.SubjectCompany} {
		if e != nil && e.Name != "" {
			out = append(out, e.Name)
		}
	}
	return out
}

// containsToken reports whether needle (a space-separated token run) occurs
// as a substring of haystack, both already normalized.
func containsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(haystack, needle)
}
