package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/catalog"
)

// CategoryRequest representa a criação/atualização de categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SizeRequest representa a criação/atualização de tamanho
type SizeRequest struct {
	Name           string  `json:"name" binding:"required"`
	ReferenceValue float64 `json:"reference_value" binding:"omitempty,gte=0"`
}

// SizeResponse representa a resposta de tamanho
type SizeResponse struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	Name           string    `json:"name"`
	ReferenceValue float64   `json:"reference_value"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToCategoryResponse converte um modelo de domínio em uma resposta DTO
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		BranchID:  c.BranchID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias
func ToCategoryListResponse(categories []*catalog.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = ToCategoryResponse(c)
	}
	return response
}

// ToSizeResponse converte um modelo de domínio em uma resposta DTO
func ToSizeResponse(s *catalog.Size) SizeResponse {
	return SizeResponse{
		ID:             s.ID,
		BranchID:       s.BranchID,
		Name:           s.Name,
		ReferenceValue: s.ReferenceValue,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToSizeListResponse converte uma lista de tamanhos
func ToSizeListResponse(sizes []*catalog.Size) []SizeResponse {
	response := make([]SizeResponse, len(sizes))
	for i, s := range sizes {
		response[i] = ToSizeResponse(s)
	}
	return response
}
