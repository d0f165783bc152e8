package matcher

import (
	"fmt"

	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/model"
	"github.com/sells-group/prospect-matcher/internal/patternengine"
	"github.com/sells-group/prospect-matcher/internal/prospect"
)

// candidate is an internal, pre-collision-resolution match for one
// prospect against one filing. Exactly one candidate per prospect survives
// into the emitted Match Record.
type candidate struct {
	prospect model.Prospect

	method    model.MatchMethod
	nameCo    bool // true when both a name and a company signal contributed
	confidence int

	submethod       model.StructuredSubmethod
	uncertain       bool
	uncertainReason string

	companyVerified    bool
	companyCheckMethod model.CompanyCheckMethod

	distance         int
	distanceCategory model.DistanceCategory
	nameContext      string
	companyContext   string

	filingPersonName string
	filingPersonRole string

	remarks string
}

// better reports whether a should win over b under the collision rule:
// highest confidence wins; ties break toward structured, then
// company_verified, then "Name + Company" over "Name Only".
func better(a, b candidate) bool {
	if a.confidence != b.confidence {
		return a.confidence > b.confidence
	}
	if a.method != b.method {
		return a.method == model.MatchMethodStructured
	}
	if a.companyVerified != b.companyVerified {
		return a.companyVerified
	}
	if a.nameCo != b.nameCo {
		return a.nameCo
	}
	return false
}

// BuildMatchRecords runs the full Unified Matcher over one parsed filing:
// the structured probe cascade over every extracted person, the Pattern
// Engine + Adaptive Validator over the filing body, company cross-checks,
// and fusion/collision resolution, emitting at most one Match Record per
// prospect per filing. Signal-tier and FP-risk annotation happen
// downstream (the Signal Classifier and FP Risk Scorer operate on the
// returned records).
func BuildMatchRecords(idx *prospect.Index, engine *patternengine.Engine, filename string, pf *model.ParsedFiling) []model.MatchRecord {
	normalizedRawText := prospect.Normalize(pf.RawText)

	structured := make(map[string]candidate)
	for _, person := range pf.Persons {
		for _, sm := range ProbeStructured(idx, person.Name) {
			verified, method := CrossCheckCompany(sm.Prospect, pf, normalizedRawText)
			conf := StructuredConfidence(sm.Submethod, verified)
			c := candidate{
				prospect:           sm.Prospect,
				method:             model.MatchMethodStructured,
				confidence:         conf,
				submethod:          sm.Submethod,
				uncertain:          sm.UncertainMatch,
				uncertainReason:    sm.UncertainReason,
				companyVerified:    verified,
				companyCheckMethod: method,
				filingPersonName:   person.Name,
				filingPersonRole:   person.Role,
				remarks:            fmt.Sprintf("structured match (%s)", sm.Submethod),
			}
			if existing, ok := structured[sm.Prospect.ID]; !ok || better(c, existing) {
				structured[sm.Prospect.ID] = c
			}
		}
	}

	hits := engine.ScanDocument(pf.RawText)
	evidence := CollectTextEvidence(pf.RawText, hits)

	text := make(map[string]candidate)
	for id, ev := range evidence {
		p, ok := idx.ByID(id)
		if !ok {
			continue
		}

		switch {
		case len(ev.NamePositions) == 0:
			// Company-only evidence is intentionally not emitted.
			continue
		case len(ev.CompanyPositions) == 0:
			text[id] = candidate{
				prospect:   p,
				method:     model.MatchMethodText,
				confidence: textNameOnlyConfidence,
				nameContext: Snippet(pf.RawText, ev.NamePositions[0]),
				remarks:    "text match: Name Only",
			}
		default:
			namePos, companyPos, distance, _ := ev.ClosestPair()
			cat := DistanceCategory(distance)
			if cat == model.DistanceTooFar {
				text[id] = candidate{
					prospect:    p,
					method:      model.MatchMethodText,
					confidence:  textNameOnlyConfidence,
					nameContext: Snippet(pf.RawText, ev.NamePositions[0]),
					remarks:     "text match: Name Only (company too far)",
				}
				continue
			}
			text[id] = candidate{
				prospect:         p,
				method:           model.MatchMethodText,
				nameCo:           true,
				confidence:       textDistanceConfidence(cat),
				companyVerified:  true,
				companyCheckMethod: model.CompanyCheckTextFound,
				distance:         distance,
				distanceCategory: cat,
				nameContext:      Snippet(pf.RawText, namePos),
				companyContext:   Snippet(pf.RawText, companyPos),
				remarks:          "text match: Name + Company",
			}
		}
	}

	ids := make(map[string]bool, len(structured)+len(text))
	for id := range structured {
		ids[id] = true
	}
	for id := range text {
		ids[id] = true
	}

	var records []model.MatchRecord
	for id := range ids {
		var c candidate
		if sc, ok := structured[id]; ok {
			c = sc
		} else {
			c = text[id]
		}
		records = append(records, toMatchRecord(filename, pf, c))
	}
	return records
}

func toMatchRecord(filename string, pf *model.ParsedFiling, c candidate) model.MatchRecord {
	r := model.MatchRecord{
		ProspectID:          c.prospect.ID,
		ProspectName:        c.prospect.Name,
		ProspectCompany:     c.prospect.Company,
		AccessionNumber:     pf.Envelope.AccessionNumber,
		FormType:            pf.Envelope.FormClass,
		FiledDate:           pf.Envelope.FiledDate,
		PeriodOfReport:      pf.Envelope.PeriodOfReport,
		Filename:            filename,
		MatchMethod:         c.method,
		StructuredSubmethod: c.submethod,
		UncertainMatch:      c.uncertain,
		UncertainReason:     c.uncertainReason,
		CompanyVerified:     c.companyVerified,
		CompanyCheckMethod:  c.companyCheckMethod,
		Distance:            c.distance,
		DistanceCategory:    c.distanceCategory,
		NameContext:         c.nameContext,
		CompanyContext:      c.companyContext,
		MatchRemarks:        c.remarks,
		FilingPersonName:    c.filingPersonName,
		FilingPersonRole:    c.filingPersonRole,
		Confidence:          c.confidence,
		ParserUsed:          pf.ParserUsed,
		ParseError:          pf.ParseError,
	}

	if issuer := firstNonNil(pf.Envelope.Issuer, pf.Envelope.SubjectCompany); issuer != nil {
		r.Issuer = issuer.Name
		r.Ticker = issuer.Ticker
	}

	r.Is10b51Plan = pf.Flags.Is10b51Plan

	var codes []string
	var total float64
	for _, tx := range pf.Transactions {
		codes = append(codes, tx.Code)
		total += tx.DollarValue
		if tx.Code == "G" {
			r.Philanthropy = true
		}
	}
	r.TransactionCodes = codes
	r.TotalValue = total
	r.TransactionSummary = summarizeTransactions(pf.Transactions)
	r.SameDaySale = hasSameDaySale(pf.Transactions)

	r.Alerts = append(r.Alerts, pf.Alerts...)

	if url, ok := header.SourceURL(filename); ok {
		r.MatchRemarks = r.MatchRemarks + " | source: " + url
	}

	return r
}

func firstNonNil(refs ...*model.EntityRef) *model.EntityRef {
	for _, r := range refs {
		if r != nil {
			return r
		}
	}
	return nil
}

func hasSameDaySale(transactions []model.Transaction) bool {
	exercise := map[string]bool{}
	sale := map[string]bool{}
	for _, tx := range transactions {
		d := tx.Date.Format("2006-01-02")
		switch tx.Code {
		case "M":
			exercise[d] = true
		case "S":
			sale[d] = true
		}
	}
	for d := range exercise {
		if sale[d] {
			return true
		}
	}
	return false
}

func summarizeTransactions(transactions []model.Transaction) string {
	counts := make(map[string]int)
	var order []string
	for _, tx := range transactions {
		label := tx.CodeLabel
		if label == "" {
			label = tx.Code
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}
	var out string
	for i, label := range order {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%d)", label, counts[label])
	}
	return out
}
