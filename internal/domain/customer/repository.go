package customer

import (
	"context"
)

// Repository define as operações de persistência para clientes
type Repository interface {
	// Create persiste um novo cliente
	Create(ctx context.Context, customer *Customer) error

	// FindByID busca um cliente pelo ID dentro da filial
	FindByID(ctx context.Context, id, branchID string) (*Customer, error)

	// Update atualiza um cliente existente
	Update(ctx context.Context, customer *Customer) error

	// Deactivate marca um cliente como inativo (soft delete)
	Deactivate(ctx context.Context, id, branchID string) error

	// ListByBranch retorna os clientes ativos da filial
	ListByBranch(ctx context.Context, branchID string) ([]*Customer, error)
}
