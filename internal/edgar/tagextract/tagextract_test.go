package tagextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstTag_UnwrapsValue(t *testing.T) {
	body := `<issuerName><value>Acme Corp</value></issuerName>`
	got, ok := FirstTag(body, "issuerName")
	assert.True(t, ok)
	assert.Equal(t, "Acme Corp", got)
}

func TestFirstTag_Missing(t *testing.T) {
	_, ok := FirstTag("<a>x</a>", "b")
	assert.False(t, ok)
}

func TestAllTags_MultipleBlocks(t *testing.T) {
	body := `<infoTable>1</infoTable><infoTable>2</infoTable>`
	got := AllTags(body, "infoTable")
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestAsInt64_StripsCommas(t *testing.T) {
	n, ok := AsInt64("1,234,567")
	assert.True(t, ok)
	assert.Equal(t, int64(1234567), n)
}

func TestAsFloat64_StripsDollarSign(t *testing.T) {
	f, ok := AsFloat64("$12.50")
	assert.True(t, ok)
	assert.InDelta(t, 12.50, f, 0.0001)
}

func TestAsBool(t *testing.T) {
	assert.True(t, AsBool("1"))
	assert.True(t, AsBool("true"))
	assert.True(t, AsBool("TRUE"))
	assert.False(t, AsBool("0"))
	assert.False(t, AsBool(""))
}

func TestEmbeddedXML(t *testing.T) {
	doc := `<TEXT><XML><ownershipDocument>x</ownershipDocument></XML></TEXT>`
	xml, ok := EmbeddedXML(doc)
	assert.True(t, ok)
	assert.Contains(t, xml, "ownershipDocument")
}

func TestEmbeddedMarkup_PrefersXBRLOverHTML(t *testing.T) {
	doc := `<TEXT><HTML><p>html</p></HTML><XBRL><fact>1</fact></XBRL></TEXT>`
	markup, ok := EmbeddedMarkup(doc)
	assert.True(t, ok)
	assert.Contains(t, markup, "fact")
}

func TestDecodeEntities(t *testing.T) {
	got := DecodeEntities("Smith &amp; Jones &#39;the firm&#39;")
	assert.Equal(t, "Smith & Jones 'the firm'", got)
}

func TestStripHTML(t *testing.T) {
	got := StripHTML("<p>Hello   <b>World</b></p>")
	assert.Equal(t, "Hello World", got)
}
