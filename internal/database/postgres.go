// File: internal/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// migrateInstance 是 *migrate.Migrate 中用到的方法
type migrateInstance interface {
	Up() error
	Down() error
}

// 以下變數讓測試可替換外部相依
var (
	pgxpoolNew             = pgxpool.New
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// NewPgxPool 建立 PostgreSQL 連線池
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}

// RunMigrations 執行所有 PostgreSQL migration (up all)
func RunMigrations(dbURL string) error {
	return withPostgresMigrator(dbURL, func(m migrateInstance) error { return m.Up() })
}

// RollbackAll 退回所有 PostgreSQL migration (down to version 0)
func RollbackAll(dbURL string) error {
	return withPostgresMigrator(dbURL, func(m migrateInstance) error { return m.Down() })
}

func withPostgresMigrator(dbURL string, step func(migrateInstance) error) error {
	// 使用 pgx stdlib driver 建立 *sql.DB
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("postgres migrate driver: %w", err)
	}
	return applyMigrations(driver, "postgres", "migrations/postgres", step)
}

func applyMigrations(driver dbdriver.Driver, name, dir string, step func(migrateInstance) error) error {
	sourceDriver, err := iofsNewFn(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := migrateNewWithInstance("iofs", sourceDriver, name, driver)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", name, err)
	}
	return nil
}
