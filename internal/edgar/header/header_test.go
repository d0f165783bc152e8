package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleForm4 = `<SEC-HEADER>0000320193-24-000123.hdr.sgml : 20240215
ACCESSION NUMBER:		0000320193-24-000123
CONFORMED SUBMISSION TYPE:	4
FILED AS OF DATE:		20240215
DATE AS OF CHANGE:		20240215

REPORTING-OWNER:

	OWNER DATA:
		COMPANY CONFORMED NAME:		SMITH JANE
		CENTRAL INDEX KEY:			0001234567

ISSUER:

	COMPANY DATA:
		COMPANY CONFORMED NAME:		ACME CORP
		CENTRAL INDEX KEY:			0000320193
		STANDARD INDUSTRIAL CLASSIFICATION:	ELECTRONIC COMPUTERS [3571]
		STATE OF INCORPORATION:		DE
		IRS NUMBER:				942404110

</SEC-HEADER>`

func TestParse_Form4Envelope(t *testing.T) {
	h, ok := Parse(sampleForm4)
	require.True(t, ok)

	assert.Equal(t, "0000320193-24-000123", h.AccessionNumber)
	assert.Equal(t, "4", h.FormType)
	assert.Equal(t, ClassForm4, h.FormClass)
	assert.Equal(t, "20240215", h.FiledDate)

	require.NotNil(t, h.ReportingOwner)
	assert.Equal(t, "SMITH JANE", h.ReportingOwner.Name)
	assert.Equal(t, "0001234567", h.ReportingOwner.CIK)

	require.NotNil(t, h.Issuer)
	assert.Equal(t, "ACME CORP", h.Issuer.Name)
	assert.Equal(t, "3571", h.Issuer.SIC)
	assert.Equal(t, "DE", h.Issuer.State)
	assert.Equal(t, "942404110", h.Issuer.EIN)
}

func TestParse_MissingEnvelope(t *testing.T) {
	h, ok := Parse("no envelope here")
	assert.False(t, ok)
	assert.Equal(t, Header{}, h)
}

func TestParse_8KItems(t *testing.T) {
	doc := `<SEC-HEADER>
ACCESSION NUMBER:		0000320193-24-000200
CONFORMED SUBMISSION TYPE:	8-K
ITEM INFORMATION:		5.02
ITEM INFORMATION:		9.01
</SEC-HEADER>`

	h, ok := Parse(doc)
	require.True(t, ok)
	assert.Equal(t, Class8K, h.FormClass)
	assert.Equal(t, []string{"5.02", "9.01"}, h.Items)
}

func TestNormalizeFormClass(t *testing.T) {
	cases := map[string]string{
		"4":        ClassForm4,
		"4/A":      ClassForm4,
		"8-K":      Class8K,
		"8-K/A":    Class8K,
		"SC 13D":   ClassSC13D,
		"SC 13D/A": ClassSC13D,
		"SC 13G":   ClassSC13G,
		"13F-HR":   Class13FHR,
		"13F-NT":   Class13FNT,
		"DEF 14A":  ClassDEF14A,
		"DEFA14A":  ClassDEF14A,
		"D":        ClassFormD,
		"D/A":      ClassFormD,
		"424B4":    Class424B,
		"10-K":     Class10K,
		"10-Q":     Class10Q,
		"20-F":     ClassForeign,
		"SC TO-I":  ClassSCTO,
		"SC 13E3":  ClassSCTO,
		"UNKNOWN":  ClassOther,
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeFormClass(input), "input %q", input)
	}
}
