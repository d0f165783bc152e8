package formparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header4(formType string) string {
	return `<SEC-HEADER>
ACCESSION NUMBER:		0000320193-24-000123
CONFORMED SUBMISSION TYPE:	` + formType + `
FILED AS OF DATE:		20240215

REPORTING-OWNER:

	OWNER DATA:
		COMPANY CONFORMED NAME:		SMITH JANE
		CENTRAL INDEX KEY:			0001234567

ISSUER:

	COMPANY DATA:
		COMPANY CONFORMED NAME:		ACME CORP
		CENTRAL INDEX KEY:			0000320193

</SEC-HEADER>`
}

func TestParse_Form4_GiftAndLargeSale(t *testing.T) {
	xml := `<TEXT><XML><ownershipDocument>
<reportingOwner><rptOwnerName>Jane Smith</rptOwnerName><rptOwnerCik>1234567</rptOwnerCik>
<isDirector>1</isDirector></reportingOwner>
<nonDerivativeTransaction>
<transactionCode>G</transactionCode>
<transactionDate>2024-02-10</transactionDate>
<transactionShares>1000</transactionShares>
<transactionPricePerShare>0</transactionPricePerShare>
<transactionAcquiredDisposedCode>D</transactionAcquiredDisposedCode>
</nonDerivativeTransaction>
<nonDerivativeTransaction>
<transactionCode>S</transactionCode>
<transactionDate>2024-02-12</transactionDate>
<transactionShares>50000</transactionShares>
<transactionPricePerShare>100</transactionPricePerShare>
<transactionAcquiredDisposedCode>D</transactionAcquiredDisposedCode>
</nonDerivativeTransaction>
</ownershipDocument></XML></TEXT>`

	doc := header4("4") + xml
	pf := Parse("0000320193-24-000123.txt", doc)

	require.Equal(t, "form4", pf.ParserUsed)
	require.Len(t, pf.Persons, 1)
	assert.Contains(t, pf.Persons[0].Role, "director")
	require.Len(t, pf.Transactions, 2)

	var kinds []string
	for _, a := range pf.Alerts {
		kinds = append(kinds, a.Kind)
	}
	assert.Contains(t, kinds, "PHILANTHROPY_SIGNAL")
	assert.Contains(t, kinds, "LARGE_SALE")
}

func TestParse_Form144(t *testing.T) {
	xml := `<TEXT><XML>
<name>John Doe</name>
<numberOfUnitsSold>5000</numberOfUnitsSold>
<aggregateMarketValue>250000</aggregateMarketValue>
<brokerName>Fidelity</brokerName>
</XML></TEXT>`
	doc := header4("144") + xml
	pf := Parse("f.txt", doc)

	assert.Equal(t, "form144", pf.ParserUsed)
	require.Len(t, pf.Persons, 1)
	assert.Equal(t, "John Doe", pf.Persons[0].Name)
	require.Len(t, pf.Alerts, 1)
	assert.Equal(t, "UPCOMING_LIQUIDITY", pf.Alerts[0].Kind)
}

func TestParse_FormD(t *testing.T) {
	xml := `<TEXT><XML>
<totalOfferingAmount>1000000</totalOfferingAmount>
<totalAmountSold>600000</totalAmountSold>
<totalRemaining>400000</totalRemaining>
<relatedPersonInfo><firstName>Jane</firstName><lastName>Doe</lastName><relationship>Executive Officer</relationship></relatedPersonInfo>
</XML></TEXT>`
	doc := header4("D") + xml
	pf := Parse("f.txt", doc)

	assert.Equal(t, "formd", pf.ParserUsed)
	require.Len(t, pf.Persons, 1)
	assert.Equal(t, "Jane Doe", pf.Persons[0].Name)
	assert.Equal(t, "Executive Officer", pf.Persons[0].Role)

	require.NotNil(t, pf.Offering)
	assert.InDelta(t, 1_000_000.0, pf.Offering.TotalOfferingAmount, 0.01)
	assert.InDelta(t, 600_000.0, pf.Offering.TotalAmountSold, 0.01)
	assert.InDelta(t, 400_000.0, pf.Offering.TotalRemaining, 0.01)
}

func TestParse_FormD_IndefiniteRemaining(t *testing.T) {
	xml := `<TEXT><XML>
<totalOfferingAmount>1000000</totalOfferingAmount>
<totalAmountSold>600000</totalAmountSold>
<totalRemaining>Indefinite</totalRemaining>
</XML></TEXT>`
	pf := Parse("f.txt", header4("D")+xml)

	require.NotNil(t, pf.Offering)
	assert.Zero(t, pf.Offering.TotalRemaining)
	assert.InDelta(t, 600_000.0, pf.Offering.TotalAmountSold, 0.01)
}

func TestParse_8K_Personnel(t *testing.T) {
	doc := `<SEC-HEADER>
ACCESSION NUMBER:		0000320193-24-000200
CONFORMED SUBMISSION TYPE:	8-K
ITEM INFORMATION:		5.02
</SEC-HEADER><TEXT><HTML><p>The board appointed Jane Smith as Chief Financial Officer effective immediately.</p></HTML></TEXT>`
	pf := Parse("f.txt", doc)

	assert.Equal(t, "form8k", pf.ParserUsed)
	assert.True(t, pf.Flags.IsPersonnelEvent)
	require.NotEmpty(t, pf.Persons)
	assert.Equal(t, "Jane Smith", pf.Persons[0].Name)
}

func TestParse_13F_TopHoldings(t *testing.T) {
	xml := `<TEXT><XML>
<infoTable><nameOfIssuer>Acme Corp</nameOfIssuer><value>5000</value><sshPrnamt>1000</sshPrnamt></infoTable>
<infoTable><nameOfIssuer>Beta Inc</nameOfIssuer><value>9000</value><sshPrnamt>2000</sshPrnamt></infoTable>
</XML></TEXT>`
	doc := `<SEC-HEADER>
ACCESSION NUMBER:		0000320193-24-000300
CONFORMED SUBMISSION TYPE:	13F-HR
</SEC-HEADER>` + xml
	pf := Parse("f.txt", doc)

	assert.Equal(t, "form13f", pf.ParserUsed)
	assert.True(t, pf.Flags.AUMNotPersonalWealth)
	require.Len(t, pf.TopHoldings, 2)
	assert.Equal(t, "Beta Inc", pf.TopHoldings[0].NameOfIssuer)
}

func TestParse_MissingHeader_FallsBackGeneric(t *testing.T) {
	pf := Parse("f.txt", "no envelope at all")
	assert.Equal(t, "generic", pf.ParserUsed)
	assert.NotEmpty(t, pf.ParseError)
}

func TestParse_Form4_GiftMessageUsesCommaSeparatedDollars(t *testing.T) {
	xml := `<TEXT><XML><ownershipDocument>
<reportingOwner><rptOwnerName>Jane Doe</rptOwnerName></reportingOwner>
<nonDerivativeTransaction>
<transactionCode>G</transactionCode>
<transactionDate>2024-02-10</transactionDate>
<transactionShares>10000</transactionShares>
<transactionPricePerShare>50</transactionPricePerShare>
<transactionAcquiredDisposedCode>D</transactionAcquiredDisposedCode>
</nonDerivativeTransaction>
</ownershipDocument></XML></TEXT>`
	pf := Parse("0000320193-24-000123.txt", header4("4")+xml)

	var gift *string
	for _, a := range pf.Alerts {
		if a.Kind == "PHILANTHROPY_SIGNAL" {
			m := a.Message
			gift = &m
		}
	}
	require.NotNil(t, gift)
	assert.Contains(t, *gift, "$500,000")
}

func TestParse_13F_FundManagerAlertReportsAUMInBillions(t *testing.T) {
	xml := `<TEXT><XML>
<infoTable><nameOfIssuer>Acme Corp</nameOfIssuer><value>2000000</value><sshPrnamt>1000</sshPrnamt></infoTable>
</XML></TEXT>`
	doc := `<SEC-HEADER>
ACCESSION NUMBER:		0000320193-24-000300
CONFORMED SUBMISSION TYPE:	13F-HR
FILER:

	COMPANY DATA:
		COMPANY CONFORMED NAME:		EXAMPLE ADVISORS LLC
</SEC-HEADER>` + xml
	pf := Parse("f.txt", doc)

	require.Len(t, pf.Transactions, 1)
	assert.InDelta(t, 2_000_000_000.0, pf.Transactions[0].DollarValue, 1)

	var fundManager *string
	for _, a := range pf.Alerts {
		if a.Kind == "FUND_MANAGER" {
			m := a.Message
			fundManager = &m
		}
	}
	require.NotNil(t, fundManager)
	assert.Contains(t, *fundManager, "$2.0B")
	assert.Contains(t, *fundManager, "AUM does not represent personal wealth")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$500,000", formatMoney(500000))
	assert.Equal(t, "$1,000,000", formatMoney(1_000_000))
	assert.Equal(t, "$42", formatMoney(42))
	assert.Equal(t, "-$100", formatMoney(-100))
}

func TestFormatAUM(t *testing.T) {
	assert.Equal(t, "$2.0B", formatAUM(2_000_000_000))
	assert.Equal(t, "$450.0M", formatAUM(450_000_000))
	assert.Equal(t, "$900", formatAUM(900))
}
