package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchRecordConfig() UpsertConfig {
	return UpsertConfig{
		Table:        "prospect_matcher.match_records",
		Columns:      []string{"prospect_id", "accession_number", "confidence"},
		ConflictKeys: []string{"prospect_id", "accession_number"},
	}
}

func TestBulkUpsert_EmptyRows(t *testing.T) {
	n, err := BulkUpsert(nil, nil, matchRecordConfig(), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestBulkUpsert_NoColumns(t *testing.T) {
	cfg := matchRecordConfig()
	cfg.Columns = nil
	_, err := BulkUpsert(nil, nil, cfg, [][]any{{"p1", "acc-1", 90}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns specified")
}

func TestBulkUpsert_NoConflictKeys(t *testing.T) {
	cfg := matchRecordConfig()
	cfg.ConflictKeys = nil
	_, err := BulkUpsert(nil, nil, cfg, [][]any{{"p1", "acc-1", 90}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict keys specified")
}

func TestBulkUpsert_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tempTable := pgx.Identifier{"_tmp_upsert_prospect_matcher_match_records"}

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TEMP TABLE").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCopyFrom(tempTable, []string{"prospect_id", "accession_number", "confidence"}).WillReturnResult(2)
	mock.ExpectExec("DELETE FROM").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO").WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	rows := [][]any{{"p1", "acc-1", 90}, {"p2", "acc-1", 75}}
	n, err := BulkUpsert(context.Background(), mock, matchRecordConfig(), rows)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsert_ExplicitUpdateCols(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tempTable := pgx.Identifier{"_tmp_upsert_prospect_matcher_match_records"}

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TEMP TABLE").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCopyFrom(tempTable, []string{"prospect_id", "accession_number", "confidence"}).WillReturnResult(1)
	mock.ExpectExec("DELETE FROM").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	cfg := matchRecordConfig()
	cfg.UpdateCols = []string{"confidence"}
	n, err := BulkUpsert(context.Background(), mock, cfg, [][]any{{"p1", "acc-1", 90}})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsert_CopyErrorRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tempTable := pgx.Identifier{"_tmp_upsert_prospect_matcher_match_records"}

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TEMP TABLE").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCopyFrom(tempTable, []string{"prospect_id", "accession_number", "confidence"}).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err = BulkUpsert(context.Background(), mock, matchRecordConfig(), [][]any{{"p1", "acc-1", 90}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY into temp table")
}

func TestSanitizeTable(t *testing.T) {
	assert.Equal(t, `"prospect_matcher"."match_records"`, sanitizeTable("prospect_matcher.match_records"))
	assert.Equal(t, `"match_records"`, sanitizeTable("match_records"))
}

func TestQuoteAndJoin(t *testing.T) {
	assert.Equal(t, `"prospect_id", "accession_number"`, quoteAndJoin([]string{"prospect_id", "accession_number"}))
}
