package formparse

import (
	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// formDParse handles Form D (exempt offering notices): issuer identity,
// entity type, state/year of incorporation, industry group, offering
// totals, federal exemptions claimed, and related persons.
func formDParse(h header.Header, document string) model.ParsedFiling {
	pf := model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "formd",
	}

	xml, ok := tagextract.EmbeddedXML(document)
	if !ok {
		pf.ParseError = "no embedded formDDocument XML"
		return pf
	}

	totalOfferingStr, _ := tagextract.FirstTag(xml, "totalOfferingAmount")
	totalSoldStr, _ := tagextract.FirstTag(xml, "totalAmountSold")
	totalRemainingStr, _ := tagextract.FirstTag(xml, "totalRemaining")
	totalOffering, _ := tagextract.AsFloat64(totalOfferingStr)
	totalSold, _ := tagextract.AsFloat64(totalSoldStr)
	totalRemaining, _ := tagextract.AsFloat64(totalRemainingStr)

	pf.Offering = &model.OfferingTotals{
		TotalOfferingAmount: totalOffering,
		TotalAmountSold:     totalSold,
		TotalRemaining:      totalRemaining,
	}

	pf.Transactions = append(pf.Transactions, model.Transaction{
		Code:        "D",
		CodeLabel:   "exempt offering",
		DollarValue: totalOffering,
		Acquired:    true,
	})

	for _, block := range tagextract.AllTags(xml, "relatedPersonInfo") {
		first, _ := tagextract.FirstTag(block, "firstName")
		last, _ := tagextract.FirstTag(block, "lastName")
		name := first
		if last != "" {
			if name != "" {
				name += " "
			}
			name += last
		}
		var role string
		for _, rel := range tagextract.AllTags(block, "relationship") {
			switch rel {
			case "Executive Officer", "Director", "Promoter":
				role = rel
			}
		}
		if name != "" {
			pf.Persons = append(pf.Persons, model.Person{Name: name, Role: role})
		}
	}

	return pf
}
