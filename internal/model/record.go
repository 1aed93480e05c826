package model

import "time"

// Record 是 users 資料表的一列，供儲存層與快取使用
type Record struct {
	ID              int        `db:"id" json:"id"`
	Email           string     `db:"email" json:"email"`
	Name            string     `db:"name" json:"name"`
	PasswordHash    *string    `db:"password" json:"password,omitempty"`
	Consent         bool       `db:"consent" json:"consent"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`
	RememberToken   *string    `db:"remember_token" json:"remember_token,omitempty"`
	Memo            *string    `db:"memo" json:"memo,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// Record 匯出目前狀態
func (u *User) Record() Record {
	return Record{
		ID:              u.id,
		Email:           u.email,
		Name:            u.name,
		PasswordHash:    u.passwordHash,
		Consent:         u.consent,
		EmailVerifiedAt: u.emailVerifiedAt,
		RememberToken:   u.rememberToken,
		Memo:            u.memo,
		CreatedAt:       u.createdAt,
		UpdatedAt:       u.updatedAt,
	}
}

// FromRecord 由已儲存的資料還原使用者，不經過建構驗證也不刷新 updatedAt
func FromRecord(r Record) *User {
	return &User{
		id:              r.ID,
		email:           r.Email,
		name:            r.Name,
		passwordHash:    r.PasswordHash,
		consent:         r.Consent,
		emailVerifiedAt: r.EmailVerifiedAt,
		rememberToken:   r.RememberToken,
		memo:            r.Memo,
		createdAt:       r.CreatedAt,
		updatedAt:       r.UpdatedAt,
	}
}
