// Package seed populates the reference tables a fresh deployment needs before
// it can serve traffic: roles and domains. It runs after migrations, inside a
// single transaction, and is safe to re-run — tables that already hold data
// are skipped entirely.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/worqlo/deploy-tools/internal/db"
)

// DefaultRoles builds the role catalog for one seeding run. Identifiers are
// generated fresh on every call; the catalog is never shared between runs.
func DefaultRoles() []db.Role {
	now := time.Now().UTC()
	return []db.Role{
		{
			ID:          uuid.NewString(),
			Title:       "admin",
			Description: "Administrator with full access to all features",
			IsActive:    true,
			DateCreated: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "user",
			Description: "Standard user with basic access",
			IsActive:    true,
			DateCreated: now,
		},
	}
}

// DefaultDomains builds the domain catalog for one seeding run.
func DefaultDomains() []db.Domain {
	now := time.Now().UTC()
	titles := []string{"Sales", "Marketing", "Support", "Engineering"}
	domains := make([]db.Domain, 0, len(titles))
	for _, title := range titles {
		domains = append(domains, db.Domain{
			ID:          uuid.NewString(),
			Title:       title,
			IsActive:    true,
			DateCreated: now,
		})
	}
	return domains
}
