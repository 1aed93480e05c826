// File: internal/dto/update_user_request.go
package dto

// UpdateUserRequest PUT/PATCH 的 JSON 內容，未提供的欄位維持原值。
// Password、RememberToken、Memo 可明確設為 null 以清除。
// swagger:model dto.UpdateUserRequest
type UpdateUserRequest struct {
	Email          *string          `json:"email" validate:"omitempty,email" example:"jane.doe@example.com"`
	Name           *string          `json:"name" validate:"omitempty,max=100" example:"Jane Doe"`
	Password       Optional[string] `json:"password" swaggertype:"string"`
	Consent        *bool            `json:"consent" example:"true"`
	RememberToken  Optional[string] `json:"rememberToken" swaggertype:"string"`
	Memo           Optional[string] `json:"memo" swaggertype:"string"`
	EmailConfirmed *bool            `json:"emailConfirmed" example:"true"`
}
