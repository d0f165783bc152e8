package patternengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-matcher/internal/model"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	body := Normalize("Jane   Doe\nworks at Acme")
	assert.Equal(t, "jane doe works at acme", body.Normalized)
}

func TestNormalize_ToRawRoundTrip(t *testing.T) {
	raw := "Jane   Doe"
	body := Normalize(raw)
	// "jane doe" -> position of "doe" starts at normalized index 5
	rawPos := body.ToRaw(5)
	assert.Equal(t, "Doe", raw[rawPos:rawPos+3])
}

func TestEngine_ScanFindsBoundaryRespectingHit(t *testing.T) {
	patterns := []model.Pattern{{Text: "jane doe", Kind: model.PatternKindName}}
	e := Build(patterns)

	raw := "Filed by Jane Doe, an individual."
	body := Normalize(raw)
	hits := e.Scan(body)

	require.Len(t, hits, 1)
	assert.Equal(t, "jane doe", strings.ToLower(raw[hits[0].RawStart:hits[0].RawEnd]))
}

func TestEngine_ScanRejectsEmbeddedWithinLongerWord(t *testing.T) {
	patterns := []model.Pattern{{Text: "ann lee", Kind: model.PatternKindName}}
	e := Build(patterns)

	raw := "susannleecorp reported earnings"
	body := Normalize(raw)
	hits := e.Scan(body)

	assert.Empty(t, hits)
}

func TestEngine_AcceptedHitSurvivesWhitespacePadding(t *testing.T) {
	patterns := []model.Pattern{{Text: "jane doe", Kind: model.PatternKindName}}
	e := Build(patterns)

	raw := "Filed by Jane Doe, an individual."
	require.Len(t, e.Scan(Normalize(raw)), 1)

	padded := "   " + raw + "   "
	assert.Len(t, e.Scan(Normalize(padded)), 1)
}

func TestSplitForScan_SmallBodySingleChunk(t *testing.T) {
	chunks := SplitForScan("short body", 10)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Start)
}

func TestSplitForScan_LargeBodyOverlaps(t *testing.T) {
	raw := strings.Repeat("a", LargeFilingThreshold+1)
	chunks := SplitForScan(raw, 20)
	require.Greater(t, len(chunks), 1)
	for i := 1; i < len(chunks); i++ {
		assert.Less(t, chunks[i].Start, chunks[i-1].Start+len(chunks[i-1].Text))
	}
}
