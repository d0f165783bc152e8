// Package fprisk scores a Match Record's false-positive risk and derives
// its final verdict. The scorer is additive and capped, in the style of
// internal/scorer's advisor-fit scoring: fixed weights summed per
// contributing signal, never re-derived or machine-learned.
package fprisk

import (
	"strings"
	"unicode"

	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/prospect"
	"github.com/sells-group/prospect-matcher/internal/validator"
)

type weighted struct {
	points int
	reason string
}

// Score computes the additive FP-risk score (capped at 100), its bucket,
// and the ordered list of contributing reasons for a single Match Record.
func Score(r model.MatchRecord) (int, model.FPRiskLevel, []string) {
	var hits []weighted

	if r.StructuredSubmethod == model.SubmethodFirstMiddleOnly {
		hits = append(hits, weighted{80, "structured match is first+middle only"})
	} else if r.UncertainMatch {
		hits = append(hits, weighted{40, "uncertain structured match"})
	}

	if r.MatchMethod == model.MatchMethodStructured && !r.CompanyVerified {
		hits = append(hits, weighted{20, "structured match with unverified company"})
	}

	first, last := nameTokens(r.ProspectName)
	switch {
	case len(first) == 1 || len(last) == 1:
		hits = append(hits, weighted{50, "prospect name has a 1-character token"})
	case len(first) == 2 && len(last) == 2:
		hits = append(hits, weighted{40, "prospect first and last name are both 2 characters"})
	case len(first) == 2 || len(last) == 2:
		hits = append(hits, weighted{20, "prospect name has a 2-character token"})
	}

	root := prospect.CompanyRoot(prospect.Normalize(r.ProspectCompany))
	switch {
	case root != "" && len(root) <= 3:
		hits = append(hits, weighted{35, "company root is 3 characters or fewer"})
	case root != "" && len(root) <= 5:
		hits = append(hits, weighted{15, "company root is 5 characters or fewer"})
	}

	context := strings.TrimSpace(r.NameContext + " " + r.CompanyContext)
	if context != "" {
		if nonASCIIFraction(context) > 0.30 {
			hits = append(hits, weighted{30, "match context is over 30% non-ASCII"})
		}
		if validator.EnglishWordCount(context) < 3 {
			hits = append(hits, weighted{20, "match context has fewer than 3 long English words"})
		}
		if hasUppercaseRun(context, 3) {
			hits = append(hits, weighted{15, "match context contains a run of 3+ uppercase letters"})
		}
	}

	// Company-only text matches are never emitted by the fusion pass, so
	// this weight is unreachable today; kept in case that emission rule
	// changes.
	if r.MatchMethod == model.MatchMethodText && r.CompanyContext != "" && r.NameContext == "" {
		hits = append(hits, weighted{10, "match type is company-only"})
	}

	if r.MatchMethod == model.MatchMethodText && r.NameContext != "" && r.CompanyContext != "" && len(root) <= 4 {
		hits = append(hits, weighted{15, "text Name+Company match with a short company root"})
	}

	if r.Confidence < 70 {
		hits = append(hits, weighted{10, "confidence below 70"})
	}

	total := 0
	reasons := make([]string, 0, len(hits))
	for _, h := range hits {
		total += h.points
		reasons = append(reasons, h.reason)
	}
	if total > 100 {
		total = 100
	}

	return total, level(total), reasons
}

func level(score int) model.FPRiskLevel {
	switch {
	case score >= 70:
		return model.RiskHigh
	case score >= 50:
		return model.RiskMedium
	case score >= 30:
		return model.RiskLow
	default:
		return model.RiskLikelyValid
	}
}

// Verdict applies the ordered verdict rules, the first matching rule
// winning.
func Verdict(r model.MatchRecord, fpLevel model.FPRiskLevel) (model.Verdict, string) {
	switch {
	case r.StructuredSubmethod == model.SubmethodFirstMiddleOnly:
		return model.VerdictLikelyFalsePositive, "structured match is first+middle only"
	case fpLevel == model.RiskHigh:
		return model.VerdictLikelyFalsePositive, "false-positive risk is HIGH_RISK"
	case r.UncertainMatch:
		return model.VerdictNeedsReview, "match is flagged uncertain"
	case r.CompanyVerified && r.Confidence >= 85:
		return model.VerdictLikelyValid, "company verified and confidence >= 85"
	case r.MatchMethod == model.MatchMethodStructured && !r.CompanyVerified:
		return model.VerdictNeedsReview, "structured match with unverified company"
	case fpLevel == model.RiskMedium:
		return model.VerdictNeedsReview, "false-positive risk is MEDIUM_RISK"
	case r.Confidence < 70:
		return model.VerdictNeedsReview, "confidence below 70"
	default:
		return model.VerdictLikelyValid, "no disqualifying signal"
	}
}

// Annotate runs Score and Verdict and writes the results onto a copy of r.
func Annotate(r model.MatchRecord) model.MatchRecord {
	score, lvl, reasons := Score(r)
	r.FPRiskScore = score
	r.FPRiskLevel = lvl
	r.FPReasons = reasons
	verdict, reason := Verdict(r, lvl)
	r.Verdict = verdict
	r.VerdictReason = reason
	return r
}

func nameTokens(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], fields[len(fields)-1]
}

func nonASCIIFraction(s string) float64 {
	if s == "" {
		return 0
	}
	total, nonASCII := 0, 0
	for _, r := range s {
		total++
		if r > unicode.MaxASCII {
			nonASCII++
		}
	}
	return float64(nonASCII) / float64(total)
}

func hasUppercaseRun(s string, n int) bool {
	run := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
