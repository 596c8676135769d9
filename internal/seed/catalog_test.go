package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()
	require.Len(t, roles, 2)

	assert.Equal(t, "admin", roles[0].Title)
	assert.Equal(t, "user", roles[1].Title)
	for _, r := range roles {
		_, err := uuid.Parse(r.ID)
		assert.NoError(t, err, "role %s id must be a uuid", r.Title)
		assert.True(t, r.IsActive)
		assert.False(t, r.IsDeleted)
		assert.NotEmpty(t, r.Description)
		assert.False(t, r.DateCreated.IsZero())
	}
	assert.NotEqual(t, roles[0].ID, roles[1].ID)
}

func TestDefaultDomains(t *testing.T) {
	domains := DefaultDomains()
	require.Len(t, domains, 4)

	titles := make([]string, 0, len(domains))
	seen := map[string]bool{}
	for _, d := range domains {
		titles = append(titles, d.Title)
		_, err := uuid.Parse(d.ID)
		assert.NoError(t, err, "domain %s id must be a uuid", d.Title)
		assert.False(t, seen[d.ID], "domain ids must be unique within a catalog")
		seen[d.ID] = true
		assert.True(t, d.IsActive)
		assert.False(t, d.IsDeleted)
	}
	assert.Equal(t, []string{"Sales", "Marketing", "Support", "Engineering"}, titles)
}

func TestCatalogsAreFreshPerCall(t *testing.T) {
	first := DefaultDomains()
	second := DefaultDomains()
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID, "each run must generate its own identifiers")
	}
}
