package main

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"user-consent/internal/config"
	"user-consent/internal/database"

	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	loadConfig = config.Load
	rollbackAllFn = database.RollbackAll
	runMigrationsFn = database.RunMigrations
	openSQLite = database.OpenSQLite
	rollbackSQLiteFn = database.RollbackSQLite
	migrateSQLiteFn = database.MigrateSQLite
	stdout = os.Stdout
	exitFunc = func(int) {}
}

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Cleanup(restoreGlobals)
	restoreGlobals()
	var buf bytes.Buffer
	stdout = &buf
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "instance", "app.db"))
	return &buf
}

func countUsers(t *testing.T, path string) int {
	t.Helper()
	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	return n
}

func TestRunSQLiteResetsData(t *testing.T) {
	out := setup(t)
	path := os.Getenv("SQLITE_PATH")

	require.NoError(t, run())
	require.Equal(t, "Initialized the database!\n", out.String())

	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (email, name, created_at, consent) VALUES (?, ?, ?, ?)`,
		"a@example.com", "A", time.Now().UTC(), true)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.Equal(t, 1, countUsers(t, path))

	require.NoError(t, run())
	require.Equal(t, 0, countUsers(t, path))
}

func TestRunPostgres(t *testing.T) {
	out := setup(t)
	t.Setenv("DATABASE_URL", "postgres://db")
	var steps []string
	rollbackAllFn = func(url string) error {
		require.Equal(t, "postgres://db", url)
		steps = append(steps, "down")
		return nil
	}
	runMigrationsFn = func(string) error { steps = append(steps, "up"); return nil }
	openSQLite = func(string) (*sql.DB, error) {
		t.Fatal("sqlite must not be opened")
		return nil, nil
	}

	require.NoError(t, run())
	require.Equal(t, []string{"down", "up"}, steps)
	require.Contains(t, out.String(), "Initialized the database!")
}

func TestRunErrors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		setup(t)
		t.Setenv("PORT", "x")
		require.ErrorContains(t, run(), "設定載入失敗")
	})
	t.Run("postgres rollback", func(t *testing.T) {
		setup(t)
		t.Setenv("DATABASE_URL", "d")
		rollbackAllFn = func(string) error { return errors.New("down") }
		require.ErrorContains(t, run(), "Rollback 失敗")
	})
	t.Run("postgres migrate", func(t *testing.T) {
		setup(t)
		t.Setenv("DATABASE_URL", "d")
		rollbackAllFn = func(string) error { return nil }
		runMigrationsFn = func(string) error { return errors.New("up") }
		require.ErrorContains(t, run(), "Migration 執行失敗")
	})
	t.Run("sqlite open", func(t *testing.T) {
		setup(t)
		openSQLite = func(string) (*sql.DB, error) { return nil, errors.New("open") }
		require.ErrorContains(t, run(), "SQLite 開啟失敗")
	})
	t.Run("sqlite rollback", func(t *testing.T) {
		setup(t)
		rollbackSQLiteFn = func(*sql.DB) error { return errors.New("down") }
		require.ErrorContains(t, run(), "Rollback 失敗")
	})
	t.Run("sqlite migrate", func(t *testing.T) {
		out := setup(t)
		migrateSQLiteFn = func(*sql.DB) error { return errors.New("up") }
		require.ErrorContains(t, run(), "Migration 執行失敗")
		require.Empty(t, out.String())
	})
}

func TestMainExit(t *testing.T) {
	setup(t)
	code := 0
	exitFunc = func(c int) { code = c }
	openSQLite = func(string) (*sql.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, code)
}
