package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/catalog"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCategoryNotFound = errors.New("categoria não encontrada")
)

// PostgresCategoryRepository implementa catalog.CategoryRepository usando PostgreSQL
type PostgresCategoryRepository struct {
	db *database.PostgresDB
}

// NewPostgresCategoryRepository cria uma nova instância de PostgresCategoryRepository
func NewPostgresCategoryRepository(db *database.PostgresDB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// Create implementa catalog.CategoryRepository.Create
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO categories (id, branch_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)",
		c.ID, c.BranchID, c.Name, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir categoria: %w", err)
	}

	return nil
}

// FindByID implementa catalog.CategoryRepository.FindByID
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id, branchID string) (*catalog.Category, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	c := &catalog.Category{}
	err = conn.QueryRow(ctx,
		"SELECT id, branch_id, name, created_at, updated_at FROM categories WHERE id = $1 AND branch_id = $2",
		id, branchID,
	).Scan(&c.ID, &c.BranchID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("falha ao buscar categoria: %w", err)
	}

	return c, nil
}

// Update implementa catalog.CategoryRepository.Update
func (r *PostgresCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE categories SET name = $3, updated_at = $4 WHERE id = $1 AND branch_id = $2",
		c.ID, c.BranchID, c.Name, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete implementa catalog.CategoryRepository.Delete (hard delete)
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"DELETE FROM categories WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao remover categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ListByBranch implementa catalog.CategoryRepository.ListByBranch
func (r *PostgresCategoryRepository) ListByBranch(ctx context.Context, branchID string) ([]*catalog.Category, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT id, branch_id, name, created_at, updated_at FROM categories WHERE branch_id = $1 ORDER BY name",
		branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*catalog.Category, 0)
	for rows.Next() {
		c := &catalog.Category{}
		if err := rows.Scan(&c.ID, &c.BranchID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler categoria: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
