package prospect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-matcher/internal/model"
)

func TestIndex_LookupReverseKey(t *testing.T) {
	idx := NewIndex()
	idx.Add(model.Prospect{ID: "p1", Name: "Jane Doe"})

	direct := idx.Lookup("jane doe")
	require.Len(t, direct, 1)
	assert.Equal(t, "p1", direct[0].ID)

	reversed := idx.Lookup("doe jane")
	require.Len(t, reversed, 1)
	assert.Equal(t, "p1", reversed[0].ID)
}

func TestIndex_ByID(t *testing.T) {
	idx := NewIndex()
	idx.Add(model.Prospect{ID: "p1", Name: "Jane Doe", Company: "Acme Corp"})

	p, ok := idx.ByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", p.Company)

	_, ok = idx.ByID("missing")
	assert.False(t, ok)
}

func TestCompanyGuardrailBlocked_GaryLeeEnterprises(t *testing.T) {
	blocked := CompanyGuardrailBlocked("Gary Lee", "gary lee")
	assert.True(t, blocked)
}

func TestCompanyGuardrailBlocked_UnrelatedCompany(t *testing.T) {
	blocked := CompanyGuardrailBlocked("Jane Doe", "acme")
	assert.False(t, blocked)
}
