package formparse

import (
	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// form144Parse handles Form 144 (intent to sell restricted/control
// securities): shares, aggregate market value, broker, and acquisition
// date/nature.
func form144Parse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "form144",
	}

	xml, ok := tagextract.EmbeddedXML(document)
	if !ok {
		pf.ParseError = "no embedded Form 144 XML"
		return pf
	}

	name, _ := tagextract.FirstTag(xml, "name")
	sharesStr, _ := tagextract.FirstTag(xml, "numberOfUnitsSold")
	aggValueStr, _ := tagextract.FirstTag(xml, "aggregateMarketValue")
	acqDateStr, _ := tagextract.FirstTag(xml, "acquisitionDate")
	acqNature, _ := tagextract.FirstTag(xml, "natureOfAcquisitionTransaction")
	broker, _ := tagextract.FirstTag(xml, "brokerName")

	shares, _ := tagextract.AsFloat64(sharesStr)
	aggValue, _ := tagextract.AsFloat64(aggValueStr)

	if name != "" {
		pf.Persons = append(pf.Persons, model.Person{Name: name, Role: "seller"})
	}

	pf.Transactions = append(pf.Transactions, model.Transaction{
		Code:          "144",
		CodeLabel:     "intent to sell",
		Shares:        shares,
		DollarValue:   aggValue,
		Date:          parseDate(acqDateStr),
		Acquired:      false,
		SecurityTitle: acqNature,
	})

	if broker != "" {
		pf.Alerts = append(pf.Alerts, model.Alert{
			Kind:     "UPCOMING_LIQUIDITY",
			Severity: model.SeverityHigh,
			Message:  "Form 144 filed via broker " + broker,
		})
	} else {
		pf.Alerts = append(pf.Alerts, model.Alert{
			Kind:     "UPCOMING_LIQUIDITY",
			Severity: model.SeverityHigh,
			Message:  "Form 144 intent to sell filed",
		})
	}

	return pf
}
