package formparse

import (
	"fmt"
	"sort"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// form13FParse handles 13F-HR/NT (institutional investment manager
// holdings reports). Sums value across all infoTable entries, retains the
// top-10 holdings by value, and records the filer as an institutional
// manager rather than an individual prospect.
func form13FParse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "form13f",
	}

	pf.Flags.AUMNotPersonalWealth = true

	if h.Filer != nil && h.Filer.Name != "" {
		pf.Persons = append(pf.Persons, model.Person{Name: h.Filer.Name, Role: "institutional manager", CIK: h.Filer.CIK})
	}

	xml, ok := tagextract.EmbeddedXML(document)
	if !ok {
		pf.ParseError = "no embedded information table XML"
		pf.Alerts = append(pf.Alerts, fundManagerAlert(0))
		return pf
	}

	var holdings []model.Holding
	var totalValue int64
	for _, block := range tagextract.AllTags(xml, "infoTable") {
		name, _ := tagextract.FirstTag(block, "nameOfIssuer")
		valueStr, _ := tagextract.FirstTag(block, "value")
		sharesStr, _ := tagextract.FirstTag(block, "sshPrnamt")

		value, _ := tagextract.AsInt64(valueStr)
		shares, _ := tagextract.AsInt64(sharesStr)

		totalValue += value
		holdings = append(holdings, model.Holding{NameOfIssuer: name, Value: value, Shares: shares})
	}

	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Value > holdings[j].Value })
	if len(holdings) > 10 {
		holdings = holdings[:10]
	}
	pf.TopHoldings = holdings

	// The information table's value column is reported in thousands of
	// dollars (SEC convention); convert to whole dollars for the common
	// Transaction.DollarValue field every downstream consumer reads.
	aumDollars := float64(totalValue) * 1000

	pf.Transactions = append(pf.Transactions, model.Transaction{
		Code:        "13F",
		CodeLabel:   "institutional holdings report",
		DollarValue: aumDollars,
		Acquired:    true,
	})

	pf.Alerts = append(pf.Alerts, fundManagerAlert(aumDollars))
	return pf
}

func fundManagerAlert(aumDollars float64) model.Alert {
	msg := "13F institutional holdings report; AUM does not represent personal wealth"
	if aumDollars > 0 {
		msg = fmt.Sprintf("%s AUM reported; AUM does not represent personal wealth", formatAUM(aumDollars))
	}
	return model.Alert{
		Kind:     "FUND_MANAGER",
		Severity: model.SeverityInfo,
		Message:  msg,
	}
}

// formatAUM renders a dollar figure in the abbreviated form a gift officer
// skims in an alert feed: "$2.0B", "$450.0M", or a plain dollar amount for
// anything smaller.
func formatAUM(v float64) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	default:
		return formatMoney(v)
	}
}
