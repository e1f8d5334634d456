package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/notification"
)

// NotificationResponse representa a resposta de notificação
type NotificationResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToNotificationResponse converte um modelo de domínio em uma resposta DTO
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		BranchID:    n.BranchID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ReferenceID: n.ReferenceID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNotificationListResponse converte uma lista de notificações
func ToNotificationListResponse(notifications []*notification.Notification) []NotificationResponse {
	response := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = ToNotificationResponse(n)
	}
	return response
}
