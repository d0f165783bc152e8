package model

import "time"

// MatchMethod is how a Match Record's evidence was produced.
type MatchMethod string

const (
	MatchMethodStructured MatchMethod = "structured"
	MatchMethodText       MatchMethod = "text"
)

// StructuredSubmethod is which probe in the structured-matching cascade won.
type StructuredSubmethod string

const (
	SubmethodExact                  StructuredSubmethod = "exact"
	SubmethodNameReorder            StructuredSubmethod = "name_reorder"
	SubmethodNameSwap               StructuredSubmethod = "name_swap"
	SubmethodNameReorderDropMiddle  StructuredSubmethod = "name_reorder_drop_middle"
	SubmethodFirstMiddleOnly        StructuredSubmethod = "first_middle_only" // uncertain
	SubmethodSuffixRemoved          StructuredSubmethod = "suffix_removed"
)

// CompanyCheckMethod is how company_verified was (or wasn't) established.
type CompanyCheckMethod string

const (
	CompanyCheckNoCompanyOnProspect   CompanyCheckMethod = "no_company_on_prospect"
	CompanyCheckRootOverlapsName      CompanyCheckMethod = "company_root_overlaps_prospect_name"
	CompanyCheckStructuredIssuer      CompanyCheckMethod = "structured_issuer_match"
	CompanyCheckTextFound             CompanyCheckMethod = "text_company_found"
	CompanyCheckNotFound              CompanyCheckMethod = "company_not_found"
)

// DistanceCategory buckets the byte distance between a name hit and a
// company hit in a text match.
type DistanceCategory string

const (
	DistanceHigh   DistanceCategory = "HIGH"
	DistanceMedium DistanceCategory = "MEDIUM"
	DistanceLow    DistanceCategory = "LOW"
	DistanceTooFar DistanceCategory = "TOO_FAR"
)

// FPRiskLevel buckets the additive false-positive risk score.
type FPRiskLevel string

const (
	RiskLikelyValid FPRiskLevel = "LIKELY_VALID"
	RiskLow         FPRiskLevel = "LOW_RISK"
	RiskMedium      FPRiskLevel = "MEDIUM_RISK"
	RiskHigh        FPRiskLevel = "HIGH_RISK"
)

// Verdict is the fused, final decision for a Match Record.
type Verdict string

const (
	VerdictLikelyValid        Verdict = "LIKELY_VALID"
	VerdictNeedsReview        Verdict = "NEEDS_REVIEW"
	VerdictLikelyFalsePositive Verdict = "LIKELY_FALSE_POSITIVE"
)

// SignalTier is the fundraising-oriented urgency classification.
type SignalTier int

const (
	Tier1 SignalTier = 1
	Tier2 SignalTier = 2
	Tier3 SignalTier = 3
)

// Urgency is the suggested follow-up speed for a gift officer.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// MatchRecord is one row emitted per (prospect, filing) pair: the unit of
// output for the whole pipeline.
type MatchRecord struct {
	// Identity.
	ProspectID      string `json:"prospect_id"`
	ProspectName    string `json:"prospect_name"`
	ProspectCompany string `json:"prospect_company,omitempty"`

	AccessionNumber string    `json:"accession_number"`
	FormType        string    `json:"form_type"`
	FiledDate       time.Time `json:"filed_date"`
	PeriodOfReport  time.Time `json:"period_of_report,omitempty"`
	Issuer          string    `json:"issuer,omitempty"`
	Ticker          string    `json:"ticker,omitempty"`
	Filename        string    `json:"filename"`

	// Evidence.
	MatchMethod         MatchMethod          `json:"match_method"`
	StructuredSubmethod StructuredSubmethod  `json:"structured_match_type,omitempty"`
	UncertainMatch      bool                 `json:"uncertain_match"`
	UncertainReason     string               `json:"uncertain_reason,omitempty"`

	CompanyVerified     bool               `json:"company_verified"`
	CompanyCheckMethod  CompanyCheckMethod `json:"company_check_method,omitempty"`

	Distance         int              `json:"distance,omitempty"`
	DistanceCategory DistanceCategory `json:"distance_category,omitempty"`
	NameContext      string           `json:"name_context,omitempty"`
	CompanyContext   string           `json:"company_context,omitempty"`
	MatchRemarks     string           `json:"match_remarks,omitempty"`

	FilingPersonName string `json:"filing_person_name,omitempty"`
	FilingPersonRole string `json:"filing_person_role,omitempty"`

	// ParserUsed names the Form Parser that produced the underlying
	// ParsedFiling ("form4", "generic", ...); ParseError carries a
	// non-fatal parser exception message when the Generic Parser
	// fallback ran after a form-specific parser failed.
	ParserUsed string `json:"parser_used,omitempty"`
	ParseError string `json:"parse_error,omitempty"`

	// Scores and outcome.
	Confidence  int         `json:"confidence"`
	FPRiskScore int         `json:"fp_risk_score"`
	FPRiskLevel FPRiskLevel `json:"fp_risk_level"`
	FPReasons   []string    `json:"fp_reasons,omitempty"`
	Verdict     Verdict     `json:"verdict"`
	VerdictReason string    `json:"verdict_reason,omitempty"`

	// Signal classification.
	SignalTier       SignalTier `json:"signal_tier"`
	SignalTierLabel  string     `json:"signal_tier_label"`
	Dimensions       []string   `json:"dimensions,omitempty"`
	Urgency          Urgency    `json:"urgency"`
	GiftOfficerAction string    `json:"gift_officer_action,omitempty"`
	SignalSummary    string     `json:"signal_summary,omitempty"`

	// Transaction rollups.
	TransactionCodes   []string `json:"transaction_codes,omitempty"`
	TransactionSummary string   `json:"transaction_summary,omitempty"`
	TotalValue         float64  `json:"total_value,omitempty"`

	// Flags.
	Is10b51Plan   bool `json:"is_10b5_1_plan"`
	Philanthropy  bool `json:"philanthropy"`
	SameDaySale   bool `json:"same_day_sale"`

	Alerts []Alert `json:"alerts,omitempty"`
}

// RunCheckpoint is the persisted state of an in-progress scan, written
// every N filings so a crashed or interrupted run can resume without
// reprocessing or re-emitting records for already-seen filenames.
type RunCheckpoint struct {
	ProcessedCount     int           `json:"processed_count"`
	Matches            []MatchRecord `json:"matches"`
	RemainingFilenames []string      `json:"remaining_filenames"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
