package formparse

import (
	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/edgar/tagextract"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// Parse dispatches a raw filing document to the form-specific parser
// selected by its normalized form class, falling back to the Generic
// Parser when the header is missing or the form-specific parser panics
// on malformed input. The returned ParsedFiling's RawText is always
// populated (tag-stripped body text) regardless of which parser ran, since
// the Unified Matcher's company text-search and Pattern Engine both need it.
func Parse(filename, document string) model.ParsedFiling {
	h, ok := header.Parse(document)
	rawText := extractRawText(document)

	if !ok {
		pf := genericParse(header.Header{}, document)
		pf.RawText = rawText
		pf.ParseError = "no SEC-HEADER envelope found"
		return pf
	}

	pf := safeParse(h, document)
	pf.RawText = rawText
	pf.Flags.IsAmendment = isAmendment(h.FormType)
	return pf
}

// safeParse recovers from a form-specific parser panic (malformed XML,
// unexpected tag nesting) and falls back to the Generic Parser, recording
// the failure as a non-fatal ParseError rather than aborting the filing.
func safeParse(h header.Header, document string) (pf model.ParsedFiling) {
	defer func() {
		if r := recover(); r != nil {
			pf = genericParse(h, document)
			pf.ParseError = "form parser panic, fell back to generic"
		}
	}()

	switch h.FormClass {
	case header.ClassForm4, header.ClassForm3, header.ClassForm5:
		return ownershipParse(h, document)
	case header.ClassForm144:
		return form144Parse(h, document)
	case header.ClassFormD:
		return formDParse(h, document)
	case header.Class8K:
		return form8KParse(h, document)
	case header.ClassSC13D, header.ClassSC13G:
		return schedule13Parse(h, document)
	case header.Class13FHR, header.Class13FNT:
		return form13FParse(h, document)
	case header.ClassDEF14A:
		return def14AParse(h, document)
	default:
		return genericParse(h, document)
	}
}

func extractRawText(document string) string {
	markup, ok := tagextract.EmbeddedMarkup(document)
	if !ok {
		return ""
	}
	return tagextract.StripHTML(markup)
}
