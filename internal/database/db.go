package database

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store.Postgres 對 users 表下 SQL 所需的 pgxpool.Pool 子集
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

// FakeDB 測試用；未設定的方法被呼叫時 panic，並記錄收到的每一條 SQL
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()

	mu         sync.Mutex
	statements []string
}

// Statements 依呼叫順序回傳收到的 SQL
func (f *FakeDB) Statements() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.statements...)
}

func (f *FakeDB) record(sql string) {
	f.mu.Lock()
	f.statements = append(f.statements, sql)
	f.mu.Unlock()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql)
	if f.ExecFn == nil {
		panic("FakeDB: unexpected Exec: " + sql)
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql)
	if f.QueryFn == nil {
		panic("FakeDB: unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.record(sql)
	if f.QueryRowFn == nil {
		panic("FakeDB: unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
