package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/worqlo/deploy-tools/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps gorm.DB with an underlying *sql.DB for pooling controls and Close.
type DB struct {
	Gorm *gorm.DB
	SQL  *sql.DB
	log  *slog.Logger
}

// New opens a PostgreSQL connection using GORM. It does not migrate anything:
// the reference tables are created by the application's migration tooling, and
// seeding against an unmigrated database is a hard error surfaced later by the
// existence checks.
func New(cfg config.Config, log *slog.Logger) (*DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	g, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := g.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// A seeding run is one short-lived session; no pool to speak of.
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &DB{Gorm: g, SQL: sqlDB, log: log}, nil
}

// Close closes the underlying sql.DB.
func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}

// Role is a reference record in the roles table. The schema is owned by the
// application's migrations; the tags here only describe it.
type Role struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	Title       string    `gorm:"column:title;type:varchar(128);not null"`
	Description string    `gorm:"column:description;type:text"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	DateCreated time.Time `gorm:"column:date_created;not null"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null"`
}

func (Role) TableName() string { return "roles" }

// Domain is a reference record in the domains table.
type Domain struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	Title       string    `gorm:"column:title;type:varchar(128);not null"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	DateCreated time.Time `gorm:"column:date_created;not null"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null"`
}

func (Domain) TableName() string { return "domains" }
