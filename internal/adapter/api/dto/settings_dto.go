package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/settings"
)

// SettingsRequest representa a criação/atualização de configurações da loja
type SettingsRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Theme         string `json:"theme"`
	ReceiptLayout string `json:"receipt_layout" binding:"omitempty,oneof=thermal full"`
}

// SettingsResponse representa a resposta de configurações
type SettingsResponse struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id,omitempty"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Theme         string    `json:"theme"`
	ReceiptLayout string    `json:"receipt_layout"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToSettingsResponse converte um modelo de domínio em uma resposta DTO
func ToSettingsResponse(s *settings.StoreSettings) SettingsResponse {
	return SettingsResponse{
		ID:            s.ID,
		BranchID:      s.BranchID,
		Name:          s.Name,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		Theme:         s.Theme,
		ReceiptLayout: string(s.ReceiptLayout),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
