package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"user-consent/internal/database"
	"user-consent/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，依 dest 數量寫入 record 或單一 id
type fakeRow struct {
	scanErr error
	rec     model.Record
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 10:
		fillRecord(dest, r.rec)
	case 1:
		// Create: RETURNING id
		*dest[0].(*int) = r.rec.ID
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

func fillRecord(dest []any, rec model.Record) {
	*dest[0].(*int) = rec.ID
	*dest[1].(*string) = rec.Email
	*dest[2].(*string) = rec.Name
	*dest[3].(**string) = rec.PasswordHash
	*dest[4].(*bool) = rec.Consent
	*dest[5].(**time.Time) = rec.EmailVerifiedAt
	*dest[6].(**string) = rec.RememberToken
	*dest[7].(**string) = rec.Memo
	*dest[8].(*time.Time) = rec.CreatedAt
	*dest[9].(**time.Time) = rec.UpdatedAt
}

// fakeRows 實作 pgx.Rows
type fakeRows struct {
	data    []model.Record
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	fillRecord(dest, r.data[r.idx])
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func sampleRecord(id int) model.Record {
	memo := "note"
	return model.Record{
		ID:        id,
		Email:     "alice@example.com",
		Name:      "Alice",
		Consent:   true,
		Memo:      &memo,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newUser(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := model.NewUser(email, nil, true, "Alice")
	require.NoError(t, err)
	return u
}

/* ---------- 完整測試 ---------- */

func TestPostgresGet(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var gotArgs []any
		s := NewPostgres(&database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{rec: sampleRecord(7)}
			},
		})
		u, err := s.Get(context.Background(), 7)
		require.NoError(t, err)
		require.Equal(t, []any{7}, gotArgs)
		require.Equal(t, sampleRecord(7), u.Record())
	})

	t.Run("not found", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: pgx.ErrNoRows} },
		})
		_, err := s.Get(context.Background(), 7)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("boom")} },
		})
		_, err := s.Get(context.Background(), 7)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestPostgresList(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{data: []model.Record{sampleRecord(1), sampleRecord(2)}}, nil
			},
		})
		list, err := s.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, 2, list[1].ID())
	})

	t.Run("empty", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
		})
		list, err := s.List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("errors", func(t *testing.T) {
		for _, fn := range []func(context.Context, string, ...any) (pgx.Rows, error){
			func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("query") },
			func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{data: []model.Record{sampleRecord(1)}, scanErr: errors.New("scan")}, nil
			},
			func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{err: errors.New("rows")}, nil },
		} {
			_, err := NewPostgres(&database.FakeDB{QueryFn: fn}).List(context.Background())
			require.Error(t, err)
		}
	})
}

func TestPostgresCreate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 9)
				require.Equal(t, "bob@example.com", args[0])
				return &fakeRow{rec: model.Record{ID: 11}}
			},
		})
		u := newUser(t, "bob@example.com")
		require.NoError(t, s.Create(context.Background(), u))
		require.Equal(t, 11, u.ID())
	})

	t.Run("duplicate", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		})
		u := newUser(t, "bob@example.com")
		err := s.Create(context.Background(), u)
		require.ErrorIs(t, err, ErrDuplicate)
		require.Zero(t, u.ID())
	})

	t.Run("other error", func(t *testing.T) {
		s := NewPostgres(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23502"}}
			},
		})
		err := s.Create(context.Background(), newUser(t, "bob@example.com"))
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestPostgresUpdateDelete(t *testing.T) {
	u := model.FromRecord(sampleRecord(3))

	exec := func(tag string, err error) *Postgres {
		return NewPostgres(&database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag(tag), err
			},
		})
	}

	require.NoError(t, exec("UPDATE 1", nil).Update(context.Background(), u))
	require.ErrorIs(t, exec("UPDATE 0", nil).Update(context.Background(), u), ErrNotFound)
	require.ErrorIs(t, exec("", &pgconn.PgError{Code: "23505"}).Update(context.Background(), u), ErrDuplicate)

	require.NoError(t, exec("DELETE 1", nil).Delete(context.Background(), 3))
	require.ErrorIs(t, exec("DELETE 0", nil).Delete(context.Background(), 3), ErrNotFound)
	require.Error(t, exec("", errors.New("fail delete")).Delete(context.Background(), 3))
}

func TestPostgresPing(t *testing.T) {
	s := NewPostgres(&database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }})
	require.EqualError(t, s.Ping(context.Background()), "down")
}

func TestPostgresStatements(t *testing.T) {
	ctx := context.Background()
	closed := false
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{rec: sampleRecord(5)}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
		PingFn:  func(context.Context) error { return nil },
		CloseFn: func() { closed = true },
	}
	s := NewPostgres(db)

	_, err := s.List(ctx)
	require.NoError(t, err)
	u, err := s.Get(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, newUser(t, "carol@example.com")))
	require.NoError(t, s.Update(ctx, u))
	require.NoError(t, s.Delete(ctx, 5))
	require.NoError(t, s.Ping(ctx))
	db.Close()
	require.True(t, closed)

	got := db.Statements()
	require.Len(t, got, 5)
	require.Contains(t, got[0], "FROM users ORDER BY id")
	require.Contains(t, got[1], "FROM users WHERE id = $1")
	require.Contains(t, got[2], "INSERT INTO users")
	require.Contains(t, got[2], "RETURNING id")
	require.Contains(t, got[3], "UPDATE users")
	require.Contains(t, got[3], "WHERE id = $9")
	require.Equal(t, "DELETE FROM users WHERE id = $1", got[4])
	for _, sql := range got {
		require.NotContains(t, sql, "?", "postgres placeholders only")
	}
}

func TestPostgresUnconfiguredFakeDB(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{}
	s := NewPostgres(db)

	require.PanicsWithValue(t, "FakeDB: unexpected QueryRow: SELECT "+userColumns+" FROM users WHERE id = $1",
		func() { _, _ = s.Get(ctx, 1) })
	require.Panics(t, func() { _, _ = s.List(ctx) })
	require.Panics(t, func() { _ = s.Delete(ctx, 1) })
	require.Panics(t, func() { _ = s.Ping(ctx) })
	require.NotPanics(t, db.Close)
	require.Len(t, db.Statements(), 3)
}
