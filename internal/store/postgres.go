// File: internal/store/postgres.go
package store

import (
	"context"
	"errors"
	"fmt"

	"user-consent/internal/database"
	"user-consent/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// Postgres 以 pgx 連線池實作 UserStore
type Postgres struct {
	db database.DB
}

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) List(ctx context.Context) ([]*model.User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
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

func (s *Postgres) Get(ctx context.Context, id int) (*model.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("Get %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get %d: %w", id, err)
	}
	return u, nil
}

func (s *Postgres) Create(ctx context.Context, u *model.User) error {
	r := u.Record()
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (email, name, password, consent, email_verified_at, remember_token, memo, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
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
	var id int
	if err := row.Scan(&id); err != nil {
		return fmt.Errorf("Create: %w", pgError(err))
	}
	return u.AssignID(id)
}

func (s *Postgres) Update(ctx context.Context, u *model.User) error {
	r := u.Record()
	tag, err := s.db.Exec(ctx,
		`UPDATE users
		 SET email = $1, name = $2, password = $3, consent = $4, email_verified_at = $5,
		     remember_token = $6, memo = $7, updated_at = $8
		 WHERE id = $9`,
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
		return fmt.Errorf("Update %d: %w", r.ID, pgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("Update %d: %w", r.ID, ErrNotFound)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("Delete %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// pgError 把唯一鍵衝突轉成 ErrDuplicate，其餘原樣回傳
func pgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
