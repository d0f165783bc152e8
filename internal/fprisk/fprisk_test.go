package fprisk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/prospect-matcher/internal/model"
)

func TestScore_FirstMiddleOnlyDominatesWeight(t *testing.T) {
	r := model.MatchRecord{
		ProspectName:        "Jane Doe",
		MatchMethod:         model.MatchMethodStructured,
		StructuredSubmethod: model.SubmethodFirstMiddleOnly,
		CompanyVerified:     true,
		Confidence:          90,
	}
	score, lvl, reasons := Score(r)
	assert.Equal(t, 80, score)
	assert.Equal(t, model.RiskHigh, lvl)
	assert.Contains(t, reasons, "structured match is first+middle only")
}

func TestScore_CleanVerifiedMatchScoresLow(t *testing.T) {
	r := model.MatchRecord{
		ProspectName:    "Jonathan Meyers",
		ProspectCompany: "Meyers Capital Partners",
		MatchMethod:     model.MatchMethodStructured,
		CompanyVerified: true,
		Confidence:      95,
	}
	score, lvl, _ := Score(r)
	assert.Equal(t, 0, score)
	assert.Equal(t, model.RiskLikelyValid, lvl)
}

func TestScore_BothNameTokensTwoCharsAddWeight(t *testing.T) {
	r := model.MatchRecord{ProspectName: "Al Yu", MatchMethod: model.MatchMethodText, Confidence: 80}
	score, _, reasons := Score(r)
	assert.Equal(t, 40, score)
	assert.Contains(t, reasons, "prospect first and last name are both 2 characters")
}

func TestScore_OneCharNameTokenAddsHigherWeight(t *testing.T) {
	r := model.MatchRecord{ProspectName: "A Yu", MatchMethod: model.MatchMethodText, Confidence: 80}
	score, _, reasons := Score(r)
	assert.Equal(t, 50, score)
	assert.Contains(t, reasons, "prospect name has a 1-character token")
}

func TestScore_ShortCompanyRootAddsWeight(t *testing.T) {
	r := model.MatchRecord{ProspectName: "Jonathan Meyers", ProspectCompany: "ABC Inc", MatchMethod: model.MatchMethodStructured, CompanyVerified: true, Confidence: 90}
	_, _, reasons := Score(r)
	assert.Contains(t, reasons, "company root is 3 characters or fewer")
}

func TestScore_CapsAt100(t *testing.T) {
	r := model.MatchRecord{
		ProspectName:        "A B",
		ProspectCompany:     "X",
		MatchMethod:         model.MatchMethodStructured,
		StructuredSubmethod: model.SubmethodFirstMiddleOnly,
		UncertainMatch:      true,
		CompanyVerified:     false,
		NameContext:         "@@##$$%%^^&&**(( )) non english symbols only here indeed",
		CompanyContext:      "@@##$$%%^^&&**(( ))",
		Confidence:          10,
	}
	score, lvl, _ := Score(r)
	assert.Equal(t, 100, score)
	assert.Equal(t, model.RiskHigh, lvl)
}

func TestVerdict_FirstMiddleOnlyAlwaysFalsePositive(t *testing.T) {
	r := model.MatchRecord{StructuredSubmethod: model.SubmethodFirstMiddleOnly, CompanyVerified: true, Confidence: 99}
	v, _ := Verdict(r, model.RiskLikelyValid)
	assert.Equal(t, model.VerdictLikelyFalsePositive, v)
}

func TestVerdict_HighRiskIsFalsePositive(t *testing.T) {
	r := model.MatchRecord{}
	v, _ := Verdict(r, model.RiskHigh)
	assert.Equal(t, model.VerdictLikelyFalsePositive, v)
}

func TestVerdict_UncertainNeedsReview(t *testing.T) {
	r := model.MatchRecord{UncertainMatch: true}
	v, _ := Verdict(r, model.RiskLow)
	assert.Equal(t, model.VerdictNeedsReview, v)
}

func TestVerdict_VerifiedHighConfidenceLikelyValid(t *testing.T) {
	r := model.MatchRecord{CompanyVerified: true, Confidence: 90}
	v, _ := Verdict(r, model.RiskLikelyValid)
	assert.Equal(t, model.VerdictLikelyValid, v)
}

func TestVerdict_StructuredUnverifiedNeedsReview(t *testing.T) {
	r := model.MatchRecord{MatchMethod: model.MatchMethodStructured, CompanyVerified: false, Confidence: 90}
	v, _ := Verdict(r, model.RiskLikelyValid)
	assert.Equal(t, model.VerdictNeedsReview, v)
}

func TestVerdict_LowConfidenceNeedsReview(t *testing.T) {
	r := model.MatchRecord{MatchMethod: model.MatchMethodText, CompanyVerified: true, Confidence: 60}
	v, _ := Verdict(r, model.RiskLikelyValid)
	assert.Equal(t, model.VerdictNeedsReview, v)
}

func TestAnnotate_PopulatesAllFields(t *testing.T) {
	r := model.MatchRecord{ProspectName: "Jonathan Meyers", ProspectCompany: "Meyers Capital", MatchMethod: model.MatchMethodStructured, CompanyVerified: true, Confidence: 95}
	out := Annotate(r)
	assert.Equal(t, model.VerdictLikelyValid, out.Verdict)
	assert.NotEmpty(t, out.VerdictReason)
}
