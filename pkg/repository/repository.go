// Package repository persists small pieces of local state in SQLite.
package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaSQL string

// defaultDSN keeps the database in the working directory
const defaultDSN = "file:vcaggregate.db?cache=shared&mode=rwc&_txlock=immediate"

// sqlitePragmas are applied when the store is opened
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA temp_store = MEMORY",
	"PRAGMA busy_timeout = 5000",
}

// Config represents database configuration, zero values keep driver defaults
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories groups the store's repositories over one database handle
type Repositories struct {
	Setting *SettingRepository
	DB      *sqlx.DB
}

// NewRepositories opens the database, tunes it and makes sure the settings table exists
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	limitPool(db, cfg)

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Repositories{Setting: NewSettingRepository(db), DB: db}, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func limitPool(db *sqlx.DB, cfg Config) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// prepare applies pragmas and the schema
func prepare(ctx context.Context, db *sqlx.DB) error {
	for _, pragma := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
