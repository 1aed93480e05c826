// File: internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"user-consent/internal/model"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLite 以 database/sql + modernc.org/sqlite 實作 UserStore，
// 未設定 DATABASE_URL 時使用
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) List(ctx context.Context) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return users, nil
}

func (s *SQLite) Get(ctx context.Context, id int) (*model.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get %d: %w", id, err)
	}
	return u, nil
}

func (s *SQLite) Create(ctx context.Context, u *model.User) error {
	r := u.Record()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, name, password, consent, email_verified_at, remember_token, memo, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Email,
		r.Name,
		r.PasswordHash,
		r.Consent,
		r.EmailVerifiedAt,
		r.RememberToken,
		r.Memo,
		r.CreatedAt,
		r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", sqliteError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return u.AssignID(int(id))
}

func (s *SQLite) Update(ctx context.Context, u *model.User) error {
	r := u.Record()
	res, err := s.db.ExecContext(ctx,
		`UPDATE users
		 SET email = ?, name = ?, password = ?, consent = ?, email_verified_at = ?,
		     remember_token = ?, memo = ?, updated_at = ?
		 WHERE id = ?`,
		r.Email,
		r.Name,
		r.PasswordHash,
		r.Consent,
		r.EmailVerifiedAt,
		r.RememberToken,
		r.Memo,
		r.UpdatedAt,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("Update %d: %w", r.ID, sqliteError(err))
	}
	return affected(res, "Update", r.ID)
}

func (s *SQLite) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete %d: %w", id, err)
	}
	return affected(res, "Delete", id)
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func affected(res sql.Result, op string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return nil
}

// sqliteError 只把 UNIQUE 約束錯誤轉成 ErrDuplicate。
// NOT NULL、CHECK 等其他約束同屬 SQLITE_CONSTRAINT，只有主碼時以訊息判斷。
func sqliteError(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %s", ErrDuplicate, se.Error())
	case sqlite3.SQLITE_CONSTRAINT:
		if strings.Contains(se.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", ErrDuplicate, se.Error())
		}
	}
	return err
}
