package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceURL(t *testing.T) {
	url, ok := SourceURL("0000320193-24-000123.txt")
	assert.True(t, ok)
	assert.Equal(t, "https://www.sec.gov/Archives/edgar/data/320193/0000320193-24-000123.txt", url)
}

func TestSourceURL_BadFilename(t *testing.T) {
	_, ok := SourceURL("not-a-filing.txt")
	assert.False(t, ok)
}
