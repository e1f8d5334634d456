package ingredient

import (
	"context"
)

// Repository define as operações de persistência para ingredientes
type Repository interface {
	// Create persiste um novo ingrediente
	Create(ctx context.Context, ingredient *Ingredient) error

	// FindByID busca um ingrediente pelo ID dentro da filial
	FindByID(ctx context.Context, id, branchID string) (*Ingredient, error)

	// Update atualiza os dados cadastrais de um ingrediente
	Update(ctx context.Context, ingredient *Ingredient) error

	// AdjustQuantity aplica um ajuste de quantidade e grava o registro de
	// histórico na mesma transação. Saldo e histórico nunca divergem:
	// ou ambos são gravados ou nenhum é. Ajustes que deixariam o saldo
	// negativo retornam ErrInsufficientStock sem alterar nada.
	AdjustQuantity(ctx context.Context, id, branchID string, delta float64, reason string) (*Ingredient, error)

	// Delete remove um ingrediente
	Delete(ctx context.Context, id, branchID string) error

	// ListByBranch retorna os ingredientes da filial
	ListByBranch(ctx context.Context, branchID string) ([]*Ingredient, error)

	// ListLowStock retorna os ingredientes com quantidade abaixo do mínimo
	ListLowStock(ctx context.Context, branchID string) ([]*Ingredient, error)

	// ListHistory retorna o histórico de movimentações do ingrediente,
	// do mais recente para o mais antigo
	ListHistory(ctx context.Context, ingredientID, branchID string) ([]*HistoryEntry, error)
}
