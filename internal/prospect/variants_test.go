package prospect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Idempotent(t *testing.T) {
	cases := []string{"Jane   Doe", "O'Brien-Smith", "José García", "PNC Capital Markets, Inc."}
	for _, c := range cases {
		once := Normalize(c)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", c)
	}
}

func TestCompanyRoot_PncCapitalMarkets(t *testing.T) {
	root := CompanyRoot(Normalize("Pnc Capital Markets Inc"))
	require.Equal(t, "pnc capital markets", root)

	// Applying again (root has no trailing legal suffix left) yields the same.
	again := CompanyRoot(root)
	assert.Equal(t, root, again)
}

func TestStripPersonalSuffix(t *testing.T) {
	got := StripPersonalSuffix(Normalize("John Smith Jr"))
	assert.Equal(t, "john smith", got)
}

func TestGenerateVariants_DiscardsShort(t *testing.T) {
	variants := GenerateVariants("Al Yu")
	for _, v := range variants {
		assert.GreaterOrEqual(t, len(v), minVariantLength)
	}
}

func TestGenerateVariants_MiddleNameDropping(t *testing.T) {
	variants := GenerateVariants("Jane Ann Doe")
	assert.Contains(t, variants, "jane doe")
}

func TestGenerateVariants_NicknameExpansion(t *testing.T) {
	variants := GenerateVariants("William Porter")
	assert.Contains(t, variants, "bill porter")
	assert.Contains(t, variants, "will porter")
}

func TestGenerateVariants_Idempotent(t *testing.T) {
	base := GenerateVariants("Jane Ann Doe")
	baseSet := make(map[string]bool, len(base))
	for _, v := range base {
		baseSet[v] = true
	}
	for _, v := range base {
		again := GenerateVariants(v)
		for _, a := range again {
			assert.True(t, baseSet[a] || len(a) < minVariantLength,
				"variant %q of %q not in original set", a, v)
		}
	}
}
