package catalog

import (
	"context"
)

// CategoryRepository define as operações de persistência para categorias.
// Categorias são removidas de forma definitiva (hard delete).
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id, branchID string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id, branchID string) error
	ListByBranch(ctx context.Context, branchID string) ([]*Category, error)
}

// SizeRepository define as operações de persistência para tamanhos.
// Tamanhos são removidos de forma definitiva (hard delete).
type SizeRepository interface {
	Create(ctx context.Context, size *Size) error
	FindByID(ctx context.Context, id, branchID string) (*Size, error)
	Update(ctx context.Context, size *Size) error
	Delete(ctx context.Context, id, branchID string) error
	ListByBranch(ctx context.Context, branchID string) ([]*Size, error)
}
