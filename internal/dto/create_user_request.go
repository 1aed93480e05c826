// File: internal/dto/create_user_request.go
package dto

// CreateUserRequest 建立使用者的 JSON 內容
// swagger:model dto.CreateUserRequest
type CreateUserRequest struct {
	Email         string  `json:"email" validate:"required,email" example:"john.doe@example.com"`
	Name          string  `json:"name" validate:"max=100" example:"John Doe"`
	Password      *string `json:"password" example:"Secret123!"`
	Consent       *bool   `json:"consent" validate:"required" example:"true"`
	RememberToken *string `json:"rememberToken"`
	Memo          *string `json:"memo" example:"VIP customer"`
}
