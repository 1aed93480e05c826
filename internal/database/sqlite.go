// File: internal/database/sqlite.go
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "modernc.org/sqlite"
)

var sqliteWithInstanceFn = sqlite.WithInstance

// OpenSQLite 開啟 SQLite 資料庫；path 為 ":memory:" 時只保留單一連線，
// 否則每條連線都會是獨立的空資料庫
func OpenSQLite(path string) (*sql.DB, error) {
	memory := path == ":memory:" || strings.Contains(path, "mode=memory")
	if !memory {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	db, err := sqlOpenDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	if !memory {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma %s: %w", p, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// MigrateSQLite 在既有連線上執行所有 migration
func MigrateSQLite(db *sql.DB) error {
	return withSQLiteMigrator(db, func(m migrateInstance) error { return m.Up() })
}

// RollbackSQLite 退回所有 migration
func RollbackSQLite(db *sql.DB) error {
	return withSQLiteMigrator(db, func(m migrateInstance) error { return m.Down() })
}

// migrate 實例不 Close：sqlite driver 的 Close 會一併關閉傳入的 *sql.DB
func withSQLiteMigrator(db *sql.DB, step func(migrateInstance) error) error {
	driver, err := sqliteWithInstanceFn(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migrate driver: %w", err)
	}
	return applyMigrations(driver, "sqlite", "migrations/sqlite", step)
}
