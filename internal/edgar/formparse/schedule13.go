package formparse

import (
	"regexp"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

var (
	ownershipPctRe = regexp.MustCompile(`\d+(\.\d+)?\s*%`)
	shareCountRe   = regexp.MustCompile(`\d{1,3}(?:,\d{3})+\s*shares`)
)

// schedule13Parse handles Schedule 13D/G (beneficial ownership reports):
// subject-company and filing-person identity from the header, plus
// ownership percentage and share count harvested from the first plausible
// occurrence in the body.
func schedule13Parse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "schedule13",
	}

	if h.Filer != nil && h.Filer.Name != "" {
		pf.Persons = append(pf.Persons, model.Person{Name: h.Filer.Name, Role: "filing person", CIK: h.Filer.CIK})
	}

	markup, _ := tagextract.EmbeddedMarkup(document)
	body := tagextract.StripHTML(markup)

	pct := ownershipPctRe.FindString(body)
	shares := shareCountRe.FindString(body)

	tx := model.Transaction{Code: h.FormClass, CodeLabel: "beneficial ownership report"}
	switch {
	case pct != "" && shares != "":
		tx.SecurityTitle = "ownership " + pct + ", " + shares
	case pct != "":
		tx.SecurityTitle = "ownership " + pct
	case shares != "":
		tx.SecurityTitle = shares
	}
	pf.Transactions = append(pf.Transactions, tx)

	pf.Alerts = append(pf.Alerts, model.Alert{
		Kind:     "ACTIVIST_OWNERSHIP",
		Severity: model.SeverityHigh,
		Message:  "Schedule " + h.FormClass + " beneficial ownership report filed",
	})

	return pf
}
