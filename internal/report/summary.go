// Package report aggregates a run's Match Records into the end-of-run
// summary: totals by tier, method, confidence bucket, form type,
// verification status, uncertain-match count, and FP-risk distribution.
package report

import (
	"time"

	"github.com/sells-group/prospect-matcher/internal/model"
)

// Summary is a point-in-time snapshot of one run's outcome.
type Summary struct {
	FilesProcessed int `json:"files_processed"`
	ParseErrors    int `json:"parse_errors"`
	MatchesTotal   int `json:"matches_total"`

	ByTier             map[string]int `json:"by_tier"`
	ByMethod           map[string]int `json:"by_method"`
	ByConfidenceBucket map[string]int `json:"by_confidence_bucket"`
	ByFormType         map[string]int `json:"by_form_type"`
	ByVerdict          map[string]int `json:"by_verdict"`
	ByFPRiskLevel      map[string]int `json:"by_fp_risk_level"`

	Verified       int `json:"verified"`
	Unverified     int `json:"unverified"`
	UncertainCount int `json:"uncertain_count"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewSummary returns an empty summary with its maps initialized.
func NewSummary() *Summary {
	return &Summary{
		ByTier:             make(map[string]int),
		ByMethod:           make(map[string]int),
		ByConfidenceBucket: make(map[string]int),
		ByFormType:         make(map[string]int),
		ByVerdict:          make(map[string]int),
		ByFPRiskLevel:      make(map[string]int),
	}
}

// AddRecord folds one Match Record into the running summary. Safe to call
// from a single aggregation goroutine merging worker-local partials; not
// itself safe for concurrent callers.
func (s *Summary) AddRecord(r model.MatchRecord) {
	s.MatchesTotal++
	s.ByTier[tierLabel(r.SignalTier)]++
	s.ByMethod[string(r.MatchMethod)]++
	s.ByConfidenceBucket[confidenceBucket(r.Confidence)]++
	s.ByFormType[r.FormType]++
	s.ByVerdict[string(r.Verdict)]++
	s.ByFPRiskLevel[string(r.FPRiskLevel)]++

	if r.CompanyVerified {
		s.Verified++
	} else {
		s.Unverified++
	}
	if r.UncertainMatch {
		s.UncertainCount++
	}
}

// Merge folds another summary's totals into s, used to combine worker-local
// partials into the final run summary.
func (s *Summary) Merge(other *Summary) {
	s.FilesProcessed += other.FilesProcessed
	s.ParseErrors += other.ParseErrors
	s.MatchesTotal += other.MatchesTotal
	s.Verified += other.Verified
	s.Unverified += other.Unverified
	s.UncertainCount += other.UncertainCount

	mergeCounts(s.ByTier, other.ByTier)
	mergeCounts(s.ByMethod, other.ByMethod)
	mergeCounts(s.ByConfidenceBucket, other.ByConfidenceBucket)
	mergeCounts(s.ByFormType, other.ByFormType)
	mergeCounts(s.ByVerdict, other.ByVerdict)
	mergeCounts(s.ByFPRiskLevel, other.ByFPRiskLevel)
}

func mergeCounts(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}

func tierLabel(t model.SignalTier) string {
	switch t {
	case model.Tier1:
		return "tier_1"
	case model.Tier2:
		return "tier_2"
	case model.Tier3:
		return "tier_3"
	default:
		return "unclassified"
	}
}

func confidenceBucket(c int) string {
	switch {
	case c >= 90:
		return "90-100"
	case c >= 70:
		return "70-89"
	case c >= 50:
		return "50-69"
	default:
		return "0-49"
	}
}
