package prospect

import (
	"context"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-matcher/internal/fetcher"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// Recognized column aliases for the duck-typed prospect row schema.
var (
	idAliases      = aliasSet("prospect_id", "Prospect ID", "prospectId", "id", "ID")
	nameAliases    = aliasSet("prospect_name", "Prospect Name", "Name", "name")
	companyAliases = aliasSet("company_name", "Company Name", "Company", "company")
)

func aliasSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return set
}

// columnMap resolves header names to column indices for id/name/company.
type columnMap struct {
	id, name, company int // -1 if absent
}

func resolveColumns(header []string) columnMap {
	cm := columnMap{id: -1, name: -1, company: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case idAliases[key]:
			cm.id = i
		case nameAliases[key]:
			cm.name = i
		case companyAliases[key]:
			cm.company = i
		}
	}
	return cm
}

// LoadCSV streams a prospect CSV and builds an Index plus the list of
// loaded prospects in one pass. Rows missing id or name are skipped silently,
// matching the external-interface contract.
func LoadCSV(ctx context.Context, r io.Reader) (*Index, []model.Prospect, error) {
	headerCh := make(chan []string, 1)
	rowCh, errCh := fetcher.StreamCSV(ctx, r, fetcher.CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		TrimSpace: true,
	})

	var cm columnMap
	select {
	case header := <-headerCh:
		cm = resolveColumns(header)
	case err := <-errCh:
		if err != nil {
			return nil, nil, eris.Wrap(err, "prospect: read header")
		}
		// Channels closed with no error: the header, if one existed, is
		// already buffered.
		select {
		case header := <-headerCh:
			cm = resolveColumns(header)
		default:
			return nil, nil, eris.New("prospect: empty CSV, no header row")
		}
	}

	if cm.id == -1 || cm.name == -1 {
		return nil, nil, eris.New("prospect: no recognized id/name columns in CSV header")
	}

	idx := NewIndex()
	var prospects []model.Prospect
	var skipped int

	for row := range rowCh {
		if cm.id >= len(row) || cm.name >= len(row) {
			skipped++
			continue
		}
		id := strings.TrimSpace(row[cm.id])
		name := strings.TrimSpace(row[cm.name])
		if id == "" || name == "" {
			skipped++
			continue
		}
		p := model.Prospect{ID: id, Name: name}
		if cm.company != -1 && cm.company < len(row) {
			p.Company = strings.TrimSpace(row[cm.company])
		}
		prospects = append(prospects, p)
		idx.Add(p)
	}

	if err := <-errCh; err != nil {
		return nil, nil, eris.Wrap(err, "prospect: stream rows")
	}

	zap.L().Info("prospect: loaded",
		zap.Int("loaded", len(prospects)),
		zap.Int("skipped", skipped),
	)

	return idx, prospects, nil
}
