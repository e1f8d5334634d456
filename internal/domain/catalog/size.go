package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Size representa um tamanho do catálogo (P, M, G, aro 15...) da filial.
// O valor de referência serve como sugestão de preço ao cadastrar produtos.
type Size struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	Name           string    `json:"name"`
	ReferenceValue float64   `json:"reference_value"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewSize cria um novo tamanho de catálogo
func NewSize(branchID, name string, referenceValue float64) (*Size, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Size{
		ID:             uuid.New().String(),
		BranchID:       branchID,
		Name:           name,
		ReferenceValue: referenceValue,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// Update atualiza os dados do tamanho
func (s *Size) Update(name string, referenceValue float64) error {
	if name == "" {
		return ErrEmptyName
	}
	s.Name = name
	s.ReferenceValue = referenceValue
	s.UpdatedAt = time.Now()
	return nil
}
