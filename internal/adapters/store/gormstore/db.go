// Package gormstore implements the record store on gorm, backed by PostgreSQL
// in production and SQLite for local runs and tests.
package gormstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config controls the database connection.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// LogLevel is one of silent, error, warn, info. Defaults to warn.
	LogLevel string

	Logger *slog.Logger
}

// Store owns the connection pool and hands out repositories bound to it.
type Store struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// Open connects to the configured database.
func Open(cfg Config) (*Store, error) {
	var dialector gorm.Dialector

	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger, parseGormLevel(cfg.LogLevel)),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}

	if dialector.Name() == DriverSQLite {
		// A single connection keeps shared in-memory databases alive and
		// serializes writers, which SQLite requires anyway.
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Store{db: db, sqlDB: sqlDB}, nil
}

// Migrate creates or updates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return nil
}

// Cars returns the car repository.
func (s *Store) Cars() *CarRepository { return &CarRepository{db: s.db} }

// Owners returns the owner repository.
func (s *Store) Owners() *OwnerRepository { return &OwnerRepository{db: s.db} }

// Policies returns the policy repository.
func (s *Store) Policies() *PolicyRepository { return &PolicyRepository{db: s.db} }

// Claims returns the claim repository.
func (s *Store) Claims() *ClaimRepository { return &ClaimRepository{db: s.db} }
