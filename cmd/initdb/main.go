// initdb 清空並重建資料表。有 DATABASE_URL 時作用於 PostgreSQL，否則作用於 SQLITE_PATH。
package main

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	"user-consent/internal/config"
	"user-consent/internal/database"
)

var (
	loadConfig       = config.Load
	rollbackAllFn    = database.RollbackAll
	runMigrationsFn  = database.RunMigrations
	openSQLite       = database.OpenSQLite
	rollbackSQLiteFn = database.RollbackSQLite
	migrateSQLiteFn  = database.MigrateSQLite
	stdout           io.Writer = os.Stdout
	exitFunc                   = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	if cfg.DatabaseURL != "" {
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Rollback 失敗: %w", err)
		}
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
	} else if err := resetSQLite(cfg.SQLitePath); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Initialized the database!")
	return nil
}

func resetSQLite(path string) error {
	db, err := openSQLite(path)
	if err != nil {
		return fmt.Errorf("SQLite 開啟失敗: %w", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	if err := rollbackSQLiteFn(db); err != nil {
		return fmt.Errorf("Rollback 失敗: %w", err)
	}
	if err := migrateSQLiteFn(db); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
