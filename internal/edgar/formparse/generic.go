package formparse

import (
	"github.com/sells-group/prospect-matcher/internal/edgar/header"
	"github.com/sells-group/prospect-matcher/internal/model"
)

// genericParse handles any form class with no dedicated parser: envelope
// only, empty persons list. Text matching carries the entire identity
// evidence burden for these filings.
func genericParse(h header.Header, _ string) model.ParsedFiling {
	return model.ParsedFiling{
		Envelope:   buildEnvelope(h),
		ParserUsed: "generic",
	}
}
