package output

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-matcher/internal/db"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// matchRecordsTable is the target table for the optional Postgres sink.
// Callers are expected to have created it (or an equivalent) ahead of time;
// BulkUpsert's temp-table strategy requires the target to already exist.
const matchRecordsTable = "prospect_matcher.match_records"

var matchRecordColumns = []string{
	"prospect_id", "accession_number", "filename",
	"prospect_name", "prospect_company",
	"form_type", "issuer", "ticker", "filed_date",
	"match_method", "structured_match_type", "uncertain_match",
	"company_verified", "company_check_method",
	"confidence", "fp_risk_score", "fp_risk_level", "verdict",
	"signal_tier", "signal_tier_label", "urgency",
	"total_value", "is_10b5_1_plan", "philanthropy", "same_day_sale",
}

// WritePostgres bulk-upserts a run's Match Records into Postgres, keyed on
// (prospect_id, accession_number) so a resumed run overwrites rather than
// duplicates prior rows for the same filing.
func WritePostgres(ctx context.Context, pool *pgxpool.Pool, records []model.MatchRecord) (int64, error) {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.ProspectID, r.AccessionNumber, r.Filename,
			r.ProspectName, r.ProspectCompany,
			r.FormType, r.Issuer, r.Ticker, r.FiledDate,
			string(r.MatchMethod), string(r.StructuredSubmethod), r.UncertainMatch,
			r.CompanyVerified, string(r.CompanyCheckMethod),
			r.Confidence, r.FPRiskScore, string(r.FPRiskLevel), string(r.Verdict),
			int(r.SignalTier), r.SignalTierLabel, string(r.Urgency),
			r.TotalValue, r.Is10b51Plan, r.Philanthropy, r.SameDaySale,
		})
	}

	n, err := db.BulkUpsert(ctx, pool, db.UpsertConfig{
		Table:        matchRecordsTable,
		Columns:      matchRecordColumns,
		ConflictKeys: []string{"prospect_id", "accession_number"},
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "output: postgres sink")
	}
	return n, nil
}
