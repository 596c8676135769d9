package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TableExists reports whether a table with the given name exists in the public
// schema. It reads catalog metadata only and has no side effects.
func TableExists(ctx context.Context, tx *gorm.DB, table string) (bool, error) {
	var exists bool
	err := tx.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = ?
		)`, table).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("check table %s exists: %w", table, err)
	}
	return exists, nil
}

// TableHasRows reports whether the table contains at least one row. The table
// must exist; callers check TableExists first. The name is interpolated into
// the statement, so it must come from the fixed set of reference tables, never
// from input.
func TableHasRows(ctx context.Context, tx *gorm.DB, table string) (bool, error) {
	var hasRows bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s LIMIT 1)", table)
	if err := tx.WithContext(ctx).Raw(q).Scan(&hasRows).Error; err != nil {
		return false, fmt.Errorf("check table %s has rows: %w", table, err)
	}
	return hasRows, nil
}
