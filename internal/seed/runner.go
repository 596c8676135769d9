package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/worqlo/deploy-tools/internal/db"
)

// ErrSchemaNotMigrated signals that the reference tables have not been created
// yet. It is checked before any write so the operator can be pointed at the
// migration step rather than at an opaque insert failure.
var ErrSchemaNotMigrated = errors.New("reference tables do not exist")

// Outcome is the per-table result of one apply: either the table already had
// data and was skipped, or Count rows were staged in the transaction.
type Outcome struct {
	Table   string
	Skipped bool
	Count   int
}

// DomainRef identifies a domain for downstream consumers. When seeding was
// skipped these come from the table (a prior run assigned the identifiers),
// otherwise from the catalog just written.
type DomainRef struct {
	ID    string `gorm:"column:id"`
	Title string `gorm:"column:title"`
}

type Result struct {
	Roles      Outcome
	Domains    Outcome
	DomainRefs []DomainRef
}

// Runner seeds the reference tables in one transaction. Catalogs are passed in
// explicitly; the Runner never consults package-level state.
type Runner struct {
	dbx     *db.DB
	log     *slog.Logger
	roles   []db.Role
	domains []db.Domain
}

func NewRunner(dbx *db.DB, log *slog.Logger, roles []db.Role, domains []db.Domain) *Runner {
	return &Runner{dbx: dbx, log: log, roles: roles, domains: domains}
}

// Run checks the schema precondition, then applies both catalogs inside a
// single transaction. On any failure the transaction rolls back in full —
// roles are never left committed when domain seeding fails. There are no
// retries: the operator fixes the underlying condition and re-runs, which is
// safe because populated tables are skipped.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	exists, err := db.TableExists(ctx, r.dbx.Gorm, db.Role{}.TableName())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrSchemaNotMigrated
	}

	res := &Result{}
	err = r.dbx.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roles, err := r.applyRoles(ctx, tx)
		if err != nil {
			return err
		}
		res.Roles = roles
		r.report(roles)

		domains, refs, err := r.applyDomains(ctx, tx)
		if err != nil {
			return err
		}
		res.Domains = domains
		res.DomainRefs = refs
		r.report(domains)

		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// applyRoles inserts the role catalog unless the table already has rows.
// Inserts tolerate identifier conflicts as no-ops; identifiers are fresh per
// run, so a conflict is unexpected but not worth failing the whole run over.
func (r *Runner) applyRoles(ctx context.Context, tx *gorm.DB) (Outcome, error) {
	table := db.Role{}.TableName()
	hasRows, err := db.TableHasRows(ctx, tx, table)
	if err != nil {
		return Outcome{}, err
	}
	if hasRows {
		return Outcome{Table: table, Skipped: true}, nil
	}

	for _, rec := range r.roles {
		role := rec // copy to avoid loop variable capture
		if err := tx.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).
			Create(&role).Error; err != nil {
			return Outcome{}, fmt.Errorf("seed role %s: %w", role.Title, err)
		}
	}
	return Outcome{Table: table, Count: len(r.roles)}, nil
}

// applyDomains works like applyRoles and additionally returns the
// authoritative domain list: the existing non-deleted rows when skipped, the
// catalog just written otherwise.
func (r *Runner) applyDomains(ctx context.Context, tx *gorm.DB) (Outcome, []DomainRef, error) {
	table := db.Domain{}.TableName()
	hasRows, err := db.TableHasRows(ctx, tx, table)
	if err != nil {
		return Outcome{}, nil, err
	}
	if hasRows {
		var refs []DomainRef
		if err := tx.WithContext(ctx).
			Model(&db.Domain{}).
			Select("id", "title").
			Where("is_deleted = ?", false).
			Find(&refs).Error; err != nil {
			return Outcome{}, nil, fmt.Errorf("read existing domains: %w", err)
		}
		return Outcome{Table: table, Skipped: true}, refs, nil
	}

	refs := make([]DomainRef, 0, len(r.domains))
	for _, rec := range r.domains {
		domain := rec
		if err := tx.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).
			Create(&domain).Error; err != nil {
			return Outcome{}, nil, fmt.Errorf("seed domain %s: %w", domain.Title, err)
		}
		refs = append(refs, DomainRef{ID: domain.ID, Title: domain.Title})
	}
	return Outcome{Table: table, Count: len(r.domains)}, refs, nil
}

func (r *Runner) report(out Outcome) {
	if out.Skipped {
		r.log.Info("table already has data, skipping", "table", out.Table)
		return
	}
	r.log.Info("seeded table", "table", out.Table, "rows", out.Count)
}
