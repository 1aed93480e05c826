// File: internal/dto/message.go
package dto

// Message 一般訊息回應，例如刪除確認
// swagger:model dto.Message
type Message struct {
	Message string `json:"message" example:"User 1 deleted"`
}

// swagger:model dto.Status
type Status struct {
	Status string `json:"status" example:"ok"`
}
