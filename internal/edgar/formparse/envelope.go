package formparse

import (
	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/model"
)

func toEntityRef(e *header.Entity) *model.EntityRef {
	if e == nil {
		return nil
	}
	return &model.EntityRef{
		Name:  e.Name,
		CIK:   e.CIK,
		SIC:   e.SIC,
		State: e.State,
		EIN:   e.EIN,
	}
}

// buildEnvelope converts a parsed SEC-HEADER into the canonical envelope
// every Form Parser attaches to its ParsedFiling.
func buildEnvelope(h header.Header) model.Envelope {
	return model.Envelope{
		AccessionNumber: h.AccessionNumber,
		FormType:        h.FormType,
		FormClass:       h.FormClass,
		FiledDate:       parseDate(h.FiledDate),
		PeriodOfReport:  parseDate(h.PeriodOfReport),
		AcceptanceDate:  parseDate(h.AcceptanceDate),
		Items:           h.Items,
		Filer:           toEntityRef(h.Filer),
		Issuer:          toEntityRef(h.Issuer),
		ReportingOwner:  toEntityRef(h.ReportingOwner),
		SubjectCompany:  toEntityRef(h.SubjectCompany),
	}
}

// isAmendment reports whether a raw form type string denotes an amendment
// ("/A" suffix), used to set Flags.IsAmendment uniformly across parsers.
func isAmendment(formType string) bool {
	return len(formType) >= 2 && formType[len(formType)-2:] == "/A"
}
