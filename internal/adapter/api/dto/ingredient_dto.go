package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/ingredient"
)

// IngredientRequest representa a criação/atualização de ingrediente
type IngredientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gte=0"`
	MinQuantity float64 `json:"min_quantity" binding:"gte=0"`
	Unit        string  `json:"unit"`
	Cost        float64 `json:"cost" binding:"gte=0"`
}

// IngredientAdjustmentRequest representa um ajuste de quantidade.
// Delta positivo é entrada, negativo é saída.
type IngredientAdjustmentRequest struct {
	Delta  float64 `json:"delta" binding:"required"`
	Reason string  `json:"reason"`
}

// IngredientResponse representa a resposta de ingrediente
type IngredientResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	MinQuantity float64   `json:"min_quantity"`
	Unit        string    `json:"unit"`
	Cost        float64   `json:"cost"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IngredientHistoryResponse representa um registro de movimentação
type IngredientHistoryResponse struct {
	ID           string    `json:"id"`
	IngredientID string    `json:"ingredient_id"`
	Type         string    `json:"type"`
	Quantity     float64   `json:"quantity"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToIngredientResponse converte um modelo de domínio em uma resposta DTO,
// incluindo a classificação de nível de estoque
func ToIngredientResponse(i *ingredient.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:          i.ID,
		BranchID:    i.BranchID,
		Name:        i.Name,
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		Unit:        i.Unit,
		Cost:        i.Cost,
		Status:      string(i.Status()),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToIngredientListResponse converte uma lista de ingredientes
func ToIngredientListResponse(ingredients []*ingredient.Ingredient) []IngredientResponse {
	response := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		response[i] = ToIngredientResponse(ing)
	}
	return response
}

// ToIngredientHistoryResponse converte o histórico de movimentações
func ToIngredientHistoryResponse(entries []*ingredient.HistoryEntry) []IngredientHistoryResponse {
	response := make([]IngredientHistoryResponse, len(entries))
	for i, e := range entries {
		response[i] = IngredientHistoryResponse{
			ID:           e.ID,
			IngredientID: e.IngredientID,
			Type:         string(e.Type),
			Quantity:     e.Quantity,
			Reason:       e.Reason,
			CreatedAt:    e.CreatedAt,
		}
	}
	return response
}
