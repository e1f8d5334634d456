package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/branch"
)

// BranchRequest representa a estrutura de dados para criação/atualização de filial
type BranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Manager string `json:"manager"`
}

// BranchStatusRequest representa a mudança de status de uma filial
type BranchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// BranchResponse representa a estrutura de resposta para filial
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Manager   string    `json:"manager"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBranchResponse converte um modelo de domínio em uma resposta DTO
func ToBranchResponse(b *branch.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		Email:     b.Email,
		Manager:   b.Manager,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBranchListResponse converte uma lista de filiais para o formato de resposta
func ToBranchListResponse(branches []*branch.Branch) []BranchResponse {
	response := make([]BranchResponse, len(branches))
	for i, b := range branches {
		response[i] = ToBranchResponse(b)
	}
	return response
}
