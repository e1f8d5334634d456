package product

import (
	"context"
)

// Repository define as operações de persistência para produtos
type Repository interface {
	// Create persiste um novo produto
	Create(ctx context.Context, product *Product) error

	// FindByID busca um produto pelo ID dentro da filial
	FindByID(ctx context.Context, id, branchID string) (*Product, error)

	// Update atualiza um produto existente
	Update(ctx context.Context, product *Product) error

	// UpdateStock grava um novo valor de estoque sem tocar nos demais campos
	UpdateStock(ctx context.Context, id, branchID string, stock int) error

	// Deactivate marca um produto como inativo (soft delete)
	Deactivate(ctx context.Context, id, branchID string) error

	// ListByBranch retorna os produtos ativos da filial
	ListByBranch(ctx context.Context, branchID string) ([]*Product, error)

	// ListByCategory retorna os produtos ativos da filial em uma categoria
	ListByCategory(ctx context.Context, branchID, category string) ([]*Product, error)

	// ListLowStock retorna os produtos ativos com estoque abaixo do limite
	ListLowStock(ctx context.Context, branchID string, threshold int) ([]*Product, error)
}
