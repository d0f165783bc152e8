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

// clientColumns is the ordered 18-column Client Record schema, derived
// from the Debug Record for a gift-officer-facing export.
var clientColumns = []string{
	"signal_tier", "confidence", "match_quality",
	"prospect_name", "prospect_company", "team_name", "prospect_id",
	"signal", "form_type", "issuer_name", "ticker", "filed_date",
	"filer_role", "transaction", "value", "action", "notes", "accession_number",
}

// WriteClientCSV writes the 18-column Client Record table, a gift-officer-
// facing derivative of the Debug Record. teamName is attached to every row
// (the tool has no per-prospect team assignment of its own).
func WriteClientCSV(records []model.MatchRecord, path, teamName string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "output: create client csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(clientColumns); err != nil {
		return eris.Wrap(err, "output: write client header")
	}
	for _, r := range records {
		if err := w.Write(clientRow(r, teamName)); err != nil {
			return eris.Wrap(err, "output: write client row")
		}
	}
	return w.Error()
}

func clientRow(r model.MatchRecord, teamName string) []string {
	return []string{
		strconv.Itoa(int(r.SignalTier)), strconv.Itoa(r.Confidence), matchQuality(r),
		r.ProspectName, r.ProspectCompany, teamName, r.ProspectID,
		r.SignalTierLabel, r.FormType, r.Issuer, r.Ticker, formatDate(r),
		r.FilingPersonRole, transactionSummary(r), formatDollars(r.TotalValue),
		r.GiftOfficerAction, notes(r), r.AccessionNumber,
	}
}

// matchQuality fuses the verdict and company-verification status into a
// single human-readable label.
func matchQuality(r model.MatchRecord) string {
	verified := "unverified company"
	if r.CompanyVerified {
		verified = "verified company"
	}
	return fmt.Sprintf("%s (%s)", humanVerdict(r.Verdict), verified)
}

func humanVerdict(v model.Verdict) string {
	switch v {
	case model.VerdictLikelyValid:
		return "Likely Valid"
	case model.VerdictNeedsReview:
		return "Needs Review"
	case model.VerdictLikelyFalsePositive:
		return "Likely False Positive"
	default:
		return string(v)
	}
}

// transactionSummary returns the record's per-type summary ("label (count)"
// entries joined by ", ", or "none" when empty) followed by bracketed flag
// tags. It does not join types with " + " or state one total transaction
// count.
func transactionSummary(r model.MatchRecord) string {
	s := r.TransactionSummary
	if s == "" {
		s = "none"
	}
	var tags []string
	if r.Is10b51Plan {
		tags = append(tags, "10b5-1")
	}
	if r.Philanthropy {
		tags = append(tags, "philanthropy")
	}
	if r.SameDaySale {
		tags = append(tags, "same-day-sale")
	}
	if len(tags) == 0 {
		return s
	}
	return fmt.Sprintf("%s [%s]", s, strings.Join(tags, ","))
}

// notes keeps every INFO alert and any MEDIUM/HIGH alert whose kind is not
// already implied by the signal label (avoids repeating e.g.
// PHILANTHROPY_SIGNAL in notes when the signal itself already says so).
func notes(r model.MatchRecord) string {
	var parts []string
	for _, a := range r.Alerts {
		if a.Severity == model.SeverityInfo {
			parts = append(parts, a.Message)
			continue
		}
		if r.SignalTierLabel != "" && strings.Contains(a.Kind, strings.ToUpper(r.SignalTierLabel)) {
			continue
		}
		parts = append(parts, a.Message)
	}
	return strings.Join(parts, "; ")
}
