package settings

import (
	"context"
)

// Repository define as operações de persistência para configurações da loja
type Repository interface {
	// Save cria ou atualiza a configuração (uma por filial, uma global)
	Save(ctx context.Context, settings *StoreSettings) error

	// FindByBranch busca a configuração da filial, sem retaguarda
	FindByBranch(ctx context.Context, branchID string) (*StoreSettings, error)

	// FindGlobal busca a configuração global
	FindGlobal(ctx context.Context) (*StoreSettings, error)

	// Resolve busca a configuração da filial e recua para a global quando
	// a filial não tem configuração própria
	Resolve(ctx context.Context, branchID string) (*StoreSettings, error)
}
