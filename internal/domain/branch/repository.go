package branch

import (
	"context"
)

// Repository define as operações de persistência para filiais
type Repository interface {
	// Create persiste uma nova filial
	Create(ctx context.Context, branch *Branch) error

	// FindByID busca uma filial pelo ID
	FindByID(ctx context.Context, id string) (*Branch, error)

	// Update atualiza uma filial existente
	Update(ctx context.Context, branch *Branch) error

	// UpdateStatus atualiza o status de uma filial
	UpdateStatus(ctx context.Context, id string, status Status) error

	// List retorna todas as filiais
	List(ctx context.Context) ([]*Branch, error)

	// Exists verifica se uma filial ativa existe pelo ID
	Exists(ctx context.Context, id string) (bool, error)
}
