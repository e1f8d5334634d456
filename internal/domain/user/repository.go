package user

import (
	"context"
)

// Repository define as operações de persistência para usuários
type Repository interface {
	// Create persiste um novo usuário
	Create(ctx context.Context, user *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update atualiza um usuário existente
	Update(ctx context.Context, user *User) error

	// Deactivate marca um usuário como inativo (soft delete)
	Deactivate(ctx context.Context, id string) error

	// ListByBranch retorna os usuários ativos com acesso à filial
	ListByBranch(ctx context.Context, branchID string) ([]*User, error)

	// List retorna todos os usuários ativos
	List(ctx context.Context) ([]*User, error)
}
