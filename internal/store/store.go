// File: internal/store/store.go
package store

import (
	"context"
	"errors"

	"user-consent/internal/model"
)

var (
	// ErrNotFound 指定 id 的使用者不存在
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate 違反 email 唯一性
	ErrDuplicate = errors.New("duplicate user")
)

// UserStore 是使用者的持久化介面。每個方法對應單一 SQL 敘述，
// 失敗時不會留下部分寫入。
type UserStore interface {
	List(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id int) (*model.User, error)
	// Create 寫入新使用者並透過 AssignID 設定其 id
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

const userColumns = `id, email, name, password, consent, email_verified_at, remember_token, memo, created_at, updated_at`

// scanner 同時涵蓋 pgx.Row、pgx.Rows、*sql.Row 與 *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*model.User, error) {
	var r model.Record
	if err := s.Scan(
		&r.ID,
		&r.Email,
		&r.Name,
		&r.PasswordHash,
		&r.Consent,
		&r.EmailVerifiedAt,
		&r.RememberToken,
		&r.Memo,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return model.FromRecord(r), nil
}

type FakeStore struct {
	ListFn   func(ctx context.Context) ([]*model.User, error)
	GetFn    func(ctx context.Context, id int) (*model.User, error)
	CreateFn func(ctx context.Context, u *model.User) error
	UpdateFn func(ctx context.Context, u *model.User) error
	DeleteFn func(ctx context.Context, id int) error
	PingFn   func(ctx context.Context) error
}

func (f *FakeStore) List(ctx context.Context) ([]*model.User, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	panic("unexpected List")
}

func (f *FakeStore) Get(ctx context.Context, id int) (*model.User, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	panic("unexpected Get")
}

func (f *FakeStore) Create(ctx context.Context, u *model.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, u)
	}
	panic("unexpected Create")
}

func (f *FakeStore) Update(ctx context.Context, u *model.User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, u)
	}
	panic("unexpected Update")
}

func (f *FakeStore) Delete(ctx context.Context, id int) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	panic("unexpected Delete")
}

// Ping 未設定時視為健康
func (f *FakeStore) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}
