// Package output writes Match Records to the two tabular outputs (the full
// Debug Record and the curated Client Record) and an optional Postgres sink.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-matcher/internal/model"
)

// debugColumns is the ordered 44-column Debug Record schema.
var debugColumns = []string{
	"signal_tier", "signal_tier_label", "urgency",
	"prospect_id", "prospect_name", "prospect_company",
	"confidence", "uncertain_match", "uncertain_reason",
	"verdict", "verdict_reason",
	"company_verified", "company_check_method",
	"distance", "distance_category", "match_remarks",
	"name_context", "company_context",
	"structured_match_type", "match_method",
	"form_type", "issuer", "ticker", "filed_date", "period_of_report",
	"filing_person_name", "filing_person_role",
	"transaction_codes", "transaction_summary", "total_value",
	"is_10b5_1_plan", "philanthropy", "same_day_sale",
	"dimensions", "gift_officer_action", "signal_summary",
	"alerts",
	"fp_risk_score", "fp_risk_level", "fp_reasons",
	"parser_used", "parse_error",
	"filename", "accession_number",
}

// WriteDebugCSV writes the full 44-column Debug Record table.
func WriteDebugCSV(records []model.MatchRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "output: create debug csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(debugColumns); err != nil {
		return eris.Wrap(err, "output: write debug header")
	}
	for _, r := range records {
		if err := w.Write(debugRow(r)); err != nil {
			return eris.Wrap(err, "output: write debug row")
		}
	}
	return w.Error()
}

func debugRow(r model.MatchRecord) []string {
	return []string{
		strconv.Itoa(int(r.SignalTier)), r.SignalTierLabel, string(r.Urgency),
		r.ProspectID, r.ProspectName, r.ProspectCompany,
		strconv.Itoa(r.Confidence), strconv.FormatBool(r.UncertainMatch), r.UncertainReason,
		string(r.Verdict), r.VerdictReason,
		strconv.FormatBool(r.CompanyVerified), string(r.CompanyCheckMethod),
		strconv.Itoa(r.Distance), string(r.DistanceCategory), r.MatchRemarks,
		r.NameContext, r.CompanyContext,
		string(r.StructuredSubmethod), string(r.MatchMethod),
		r.FormType, r.Issuer, r.Ticker, formatDate(r), formatPeriod(r),
		r.FilingPersonName, r.FilingPersonRole,
		strings.Join(r.TransactionCodes, ";"), r.TransactionSummary, formatDollars(r.TotalValue),
		strconv.FormatBool(r.Is10b51Plan), strconv.FormatBool(r.Philanthropy), strconv.FormatBool(r.SameDaySale),
		strings.Join(r.Dimensions, ";"), r.GiftOfficerAction, r.SignalSummary,
		flattenAlerts(r.Alerts),
		strconv.Itoa(r.FPRiskScore), string(r.FPRiskLevel), strings.Join(r.FPReasons, "; "),
		r.ParserUsed, r.ParseError,
		r.Filename, r.AccessionNumber,
	}
}

func formatDate(r model.MatchRecord) string {
	if r.FiledDate.IsZero() {
		return ""
	}
	return r.FiledDate.Format("2006-01-02")
}

func formatPeriod(r model.MatchRecord) string {
	if r.PeriodOfReport.IsZero() {
		return ""
	}
	return r.PeriodOfReport.Format("2006-01-02")
}

func formatDollars(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func flattenAlerts(alerts []model.Alert) string {
	parts := make([]string, 0, len(alerts))
	for _, a := range alerts {
		parts = append(parts, fmt.Sprintf("[%s] %s: %s", a.Severity, a.Kind, a.Message))
	}
	return strings.Join(parts, " | ")
}
