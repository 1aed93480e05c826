// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// error 錯誤描述
	Error string `json:"error" example:"User not found: id: 1"`
}
