// File: internal/model/user.go
package model

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"user-consent/internal/service"
)

var (
	// ErrInvalidArgument 違反領域規則（例如建立時未同意）
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIDAssigned 使用者 ID 已指派，不可重設
	ErrIDAssigned = errors.New("user id already assigned")
)

var (
	hashPassword  = service.HashPassword
	checkPassword = service.CheckPassword
	now           = func() time.Time { return time.Now().UTC() }
)

// ConsentChange 是 SetConsent 的結果
type ConsentChange int

const (
	// ConsentKept 同意維持為 true，欄位已更新
	ConsentKept ConsentChange = iota
	// ConsentRevoked 使用者撤回同意，呼叫端必須刪除此使用者
	ConsentRevoked
)

func (c ConsentChange) String() string {
	if c == ConsentRevoked {
		return "revoked"
	}
	return "kept"
}

// User 代表一位使用者。欄位皆透過 setter 修改，每次修改都會刷新 updatedAt。
type User struct {
	id              int
	email           string
	name            string
	passwordHash    *string
	consent         bool
	emailVerifiedAt *time.Time
	rememberToken   *string
	memo            *string
	createdAt       time.Time
	updatedAt       *time.Time
}

// NewUser 建立新使用者；consent 為 false 時回傳 ErrInvalidArgument
func NewUser(email string, password *string, consent bool, name string) (*User, error) {
	if !consent {
		return nil, fmt.Errorf("%w: Cannot add user without consent", ErrInvalidArgument)
	}
	u := &User{
		email:     email,
		name:      name,
		consent:   consent,
		createdAt: now(),
	}
	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, fmt.Errorf("NewUser: %w", err)
		}
		u.passwordHash = &hash
	}
	return u, nil
}

func (u *User) ID() int                     { return u.id }
func (u *User) Email() string               { return u.email }
func (u *User) Name() string                { return u.name }
func (u *User) PasswordHash() *string       { return u.passwordHash }
func (u *User) Consent() bool               { return u.consent }
func (u *User) EmailVerifiedAt() *time.Time { return u.emailVerifiedAt }
func (u *User) RememberToken() *string      { return u.rememberToken }
func (u *User) Memo() *string               { return u.memo }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() *time.Time       { return u.updatedAt }

// AssignID 由儲存層在第一次寫入後呼叫，只能成功一次
func (u *User) AssignID(id int) error {
	if u.id != 0 {
		return fmt.Errorf("AssignID %d: %w", id, ErrIDAssigned)
	}
	u.id = id
	return nil
}

func (u *User) SetName(name string) {
	u.name = name
	u.touch()
}

func (u *User) SetEmail(email string) {
	u.email = email
	u.touch()
}

func (u *User) SetMemo(memo *string) {
	u.memo = memo
	u.touch()
}

func (u *User) SetRememberToken(token *string) {
	u.rememberToken = token
	u.touch()
}

// SetPassword 雜湊並儲存新密碼；nil 代表清除密碼
func (u *User) SetPassword(password *string) error {
	if password == nil {
		u.passwordHash = nil
		u.touch()
		return nil
	}
	hash, err := hashPassword(*password)
	if err != nil {
		return fmt.Errorf("SetPassword: %w", err)
	}
	u.passwordHash = &hash
	u.touch()
	return nil
}

// SetConsent 設為 false 不會修改使用者，而是回傳 ConsentRevoked
func (u *User) SetConsent(consent bool) ConsentChange {
	if !consent {
		return ConsentRevoked
	}
	u.consent = consent
	u.touch()
	return ConsentKept
}

// MarkEmailVerified 記錄 Email 驗證時間
func (u *User) MarkEmailVerified() {
	t := now()
	u.emailVerifiedAt = &t
	u.touch()
}

// CheckPassword 未設定密碼時一律回傳 false
func (u *User) CheckPassword(password string) bool {
	if u.passwordHash == nil {
		return false
	}
	return checkPassword(*u.passwordHash, password)
}

func (u *User) touch() {
	t := now()
	u.updatedAt = &t
}

func (u *User) String() string {
	return fmt.Sprintf("<User: %s>", u.email)
}

// View 是使用者對外的 JSON 表示，不含密碼
// swagger:model UserView
type View struct {
	ID              int     `json:"id" example:"1"`
	Email           string  `json:"email" example:"john.doe@example.com"`
	Name            string  `json:"name" example:"John Doe"`
	EmailVerifiedAt *string `json:"emailVerifiedAt" example:"Mon, 02 Jan 2006 15:04:05 GMT"`
	RememberToken   *string `json:"rememberToken"`
	CreatedAt       string  `json:"createdAt" example:"Mon, 02 Jan 2006 15:04:05 GMT"`
	UpdatedAt       *string `json:"updatedAt"`
	Memo            *string `json:"memo"`
	Consent         bool    `json:"consent" example:"true"`
}

// Serialize 轉為 View；時間以 RFC 1123 (GMT) 格式輸出，未設定的欄位為 null
func (u *User) Serialize() View {
	return View{
		ID:              u.id,
		Email:           u.email,
		Name:            u.name,
		EmailVerifiedAt: formatTime(u.emailVerifiedAt),
		RememberToken:   u.rememberToken,
		CreatedAt:       u.createdAt.UTC().Format(http.TimeFormat),
		UpdatedAt:       formatTime(u.updatedAt),
		Memo:            u.memo,
		Consent:         u.consent,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(http.TimeFormat)
	return &s
}
