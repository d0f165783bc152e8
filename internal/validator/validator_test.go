package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyName(t *testing.T) {
	assert.Equal(t, NameVeryShort, ClassifyName("Al", "Yu"))
	assert.Equal(t, NameShort, ClassifyName("Al", "Doe"))
	assert.Equal(t, NameMedium, ClassifyName("Ann", "Lee"))
	assert.Equal(t, NameNormal, ClassifyName("Jane", "Doe"))
}

func TestClassifyCompany(t *testing.T) {
	assert.Equal(t, CompanyVeryShort, ClassifyCompany("abc", 1))
	assert.Equal(t, CompanyShort, ClassifyCompany("abcde", 1))
	assert.Equal(t, CompanySingleWord, ClassifyCompany("acmeware", 1))
	assert.Equal(t, CompanyMultiWord, ClassifyCompany("acme capital", 2))
}

func TestValidateName_NormalClassPassesWithoutContextRequirement(t *testing.T) {
	raw := "xzq Jane Doe xzq"
	ok, _ := ValidateName(raw, 4, 12, "Jane", "Doe")
	assert.True(t, ok)
}

func TestValidateName_VeryShortRejectsSparseContext(t *testing.T) {
	raw := "zz Al Yu qq"
	ok, reason := ValidateName(raw, 3, 8, "Al", "Yu")
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}

func TestValidateName_VeryShortAcceptsRichEnglishContext(t *testing.T) {
	raw := "pursuant to the filing made by director Al Yu regarding annual securities disclosure filed today"
	start := 40
	end := 45
	ok, _ := ValidateName(raw, start, end, "Al", "Yu")
	assert.True(t, ok)
}

func TestAdjacentNameTokenOK_RejectsEmbeddedName(t *testing.T) {
	raw := "Ellis Gary Lee reported the transaction"
	// "Gary Lee" starts at index 6
	ok := AdjacentNameTokenOK(raw, 6, 14)
	assert.False(t, ok)
}

func TestAdjacentNameTokenOK_AllowsTitlePrefix(t *testing.T) {
	raw := "Director Gary Lee reported the transaction"
	ok := AdjacentNameTokenOK(raw, 9, 17)
	assert.True(t, ok)
}

func TestEncodedRegionOK_RejectsHighNonPlainFraction(t *testing.T) {
	ctx := "##$$%%^^&&**((]]}}{{||~~``==<<>>@@!!00112233445566778899"
	assert.False(t, EncodedRegionOK(ctx))
}

func TestSpaceBoundaryOK(t *testing.T) {
	assert.True(t, SpaceBoundaryOK(" Jane Doe.", 1, 9))
	assert.False(t, SpaceBoundaryOK("xJane Doex", 1, 9))
}
