package formparse

import (
	"fmt"
	"strings"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// ownershipParse handles Form 3/4/5 (Changes in Beneficial Ownership and
// related filings) from the embedded ownershipDocument XML. Holdings
// dominate Form 3/5; transactions are the primary signal on Form 4 and
// allowed on Form 5.
func ownershipParse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: parserNameForClass(h.FormClass),
	}

	xml, ok := tagextract.EmbeddedXML(document)
	if !ok {
		pf.ParseError = "no embedded ownershipDocument XML"
		return pf
	}

	enrichIssuer(&pf, xml)
	pf.Persons = ownershipOwners(xml)
	pf.Flags.Is10b51Plan = hasTenB51Plan(xml)

	nonDeriv := tagextract.AllTags(xml, "nonDerivativeTransaction")
	deriv := tagextract.AllTags(xml, "derivativeTransaction")

	for _, block := range nonDeriv {
		pf.Transactions = append(pf.Transactions, parseTransaction(block))
	}
	for _, block := range deriv {
		pf.Transactions = append(pf.Transactions, parseTransaction(block))
	}

	pf.Alerts = ownershipAlerts(pf.Transactions)
	return pf
}

func parserNameForClass(class string) string {
	switch class {
	case header.ClassForm4:
		return "form4"
	case header.ClassForm3:
		return "form3"
	case header.ClassForm5:
		return "form5"
	default:
		return "form4"
	}
}

// enrichIssuer fills envelope issuer fields the SEC-HEADER block lacks from
// the ownershipDocument's own issuer element (name, CIK, trading symbol).
func enrichIssuer(pf *model.ParsedFiling, xml string) {
	issuerBlocks := tagextract.AllTags(xml, "issuer")
	if len(issuerBlocks) == 0 {
		return
	}
	block := issuerBlocks[0]
	if pf.Envelope.Issuer == nil {
		pf.Envelope.Issuer = &model.EntityRef{}
	}
	if name, ok := tagextract.FirstTag(block, "issuerName"); ok && pf.Envelope.Issuer.Name == "" {
		pf.Envelope.Issuer.Name = name
	}
	if cik, ok := tagextract.FirstTag(block, "issuerCik"); ok && pf.Envelope.Issuer.CIK == "" {
		pf.Envelope.Issuer.CIK = cik
	}
	if symbol, ok := tagextract.FirstTag(block, "issuerTradingSymbol"); ok && pf.Envelope.Issuer.Ticker == "" {
		pf.Envelope.Issuer.Ticker = symbol
	}
}

// ownershipOwners extracts the reporting owner block(s) along with their
// role bits, collapsed into a single Person per owner.
func ownershipOwners(xml string) []model.Person {
	var persons []model.Person
	for _, block := range tagextract.AllTags(xml, "reportingOwner") {
		name, _ := tagextract.FirstTag(block, "rptOwnerName")
		cik, _ := tagextract.FirstTag(block, "rptOwnerCik")

		var roles []string
		if isDirector, _ := tagextract.FirstTag(block, "isDirector"); tagextract.AsBool(isDirector) {
			roles = append(roles, "director")
		}
		if isOfficer, _ := tagextract.FirstTag(block, "isOfficer"); tagextract.AsBool(isOfficer) {
			title, _ := tagextract.FirstTag(block, "officerTitle")
			if title != "" {
				roles = append(roles, "officer:"+title)
			} else {
				roles = append(roles, "officer")
			}
		}
		if isTenPct, _ := tagextract.FirstTag(block, "isTenPercentOwner"); tagextract.AsBool(isTenPct) {
			roles = append(roles, "10%+ owner")
		}
		if isOther, _ := tagextract.FirstTag(block, "isOther"); tagextract.AsBool(isOther) {
			otherText, _ := tagextract.FirstTag(block, "otherText")
			if otherText != "" {
				roles = append(roles, "other:"+otherText)
			} else {
				roles = append(roles, "other")
			}
		}

		persons = append(persons, model.Person{
			Name: name,
			Role: strings.Join(roles, ","),
			CIK:  cik,
		})
	}
	return persons
}

func hasTenB51Plan(xml string) bool {
	for _, block := range append(tagextract.AllTags(xml, "nonDerivativeTransaction"), tagextract.AllTags(xml, "derivativeTransaction")...) {
		if v, ok := tagextract.FirstTag(block, "transactionTimeliness"); ok && strings.Contains(strings.ToLower(v), "10b5-1") {
			return true
		}
	}
	return false
}

func parseTransaction(block string) model.Transaction {
	code, _ := tagextract.FirstTag(block, "transactionCode")
	dateStr, _ := tagextract.FirstTag(block, "transactionDate")
	sharesStr, _ := tagextract.FirstTag(block, "transactionShares")
	priceStr, _ := tagextract.FirstTag(block, "transactionPricePerShare")
	acqDispStr, _ := tagextract.FirstTag(block, "transactionAcquiredDisposedCode")
	securityTitle, _ := tagextract.FirstTag(block, "securityTitle")

	shares, _ := tagextract.AsFloat64(sharesStr)
	price, _ := tagextract.AsFloat64(priceStr)

	return model.Transaction{
		Code:          code,
		CodeLabel:     CodeLabel(code),
		Shares:        shares,
		PricePerShare: price,
		DollarValue:   shares * price,
		Date:          parseDate(dateStr),
		Acquired:      strings.EqualFold(acqDispStr, "A") || (acqDispStr == "" && IsAcquired(code)),
		SecurityTitle: securityTitle,
	}
}

// ownershipAlerts implements the Form 4-specific alert rules: a stock gift
// (code G), a same-day M/S pair, and a large sale by dollar value.
func ownershipAlerts(transactions []model.Transaction) []model.Alert {
	var alerts []model.Alert

	var totalSale, totalGift float64
	hasGift := false
	exerciseDates := map[string]bool{}
	saleDates := map[string]bool{}

	for _, tx := range transactions {
		dateKey := tx.Date.Format("2006-01-02")
		switch tx.Code {
		case "G":
			hasGift = true
			totalGift += tx.DollarValue
		case "M":
			exerciseDates[dateKey] = true
		case "S":
			saleDates[dateKey] = true
			totalSale += tx.DollarValue
		}
	}

	if hasGift {
		alerts = append(alerts, model.Alert{
			Kind:     "PHILANTHROPY_SIGNAL",
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("Stock gift detected totaling %s", formatMoney(totalGift)),
		})
	}

	for d := range exerciseDates {
		if saleDates[d] {
			alerts = append(alerts, model.Alert{
				Kind:     "SAME_DAY_SALE",
				Severity: model.SeverityHigh,
				Message:  "Exercise and sale on the same date",
			})
			break
		}
	}

	if totalSale > 1_000_000 {
		alerts = append(alerts, model.Alert{
			Kind:     "LARGE_SALE",
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("Stock sale totaling %s", formatMoney(totalSale)),
		})
	} else if totalSale > 100_000 {
		alerts = append(alerts, model.Alert{
			Kind:     "LARGE_SALE",
			Severity: model.SeverityMedium,
			Message:  fmt.Sprintf("Stock sale totaling %s", formatMoney(totalSale)),
		})
	}

	return alerts
}
