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
	ErrSizeNotFound = errors.New("tamanho não encontrado")
)

// PostgresSizeRepository implementa catalog.SizeRepository usando PostgreSQL
type PostgresSizeRepository struct {
	db *database.PostgresDB
}

// NewPostgresSizeRepository cria uma nova instância de PostgresSizeRepository
func NewPostgresSizeRepository(db *database.PostgresDB) *PostgresSizeRepository {
	return &PostgresSizeRepository{db: db}
}

// Create implementa catalog.SizeRepository.Create
func (r *PostgresSizeRepository) Create(ctx context.Context, s *catalog.Size) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"INSERT INTO sizes (id, branch_id, name, reference_value, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)",
		s.ID, s.BranchID, s.Name, s.ReferenceValue, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir tamanho: %w", err)
	}

	return nil
}

// FindByID implementa catalog.SizeRepository.FindByID
func (r *PostgresSizeRepository) FindByID(ctx context.Context, id, branchID string) (*catalog.Size, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	s := &catalog.Size{}
	err = conn.QueryRow(ctx,
		"SELECT id, branch_id, name, reference_value, created_at, updated_at FROM sizes WHERE id = $1 AND branch_id = $2",
		id, branchID,
	).Scan(&s.ID, &s.BranchID, &s.Name, &s.ReferenceValue, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSizeNotFound
		}
		return nil, fmt.Errorf("falha ao buscar tamanho: %w", err)
	}

	return s, nil
}

// Update implementa catalog.SizeRepository.Update
func (r *PostgresSizeRepository) Update(ctx context.Context, s *catalog.Size) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE sizes SET name = $3, reference_value = $4, updated_at = $5 WHERE id = $1 AND branch_id = $2",
		s.ID, s.BranchID, s.Name, s.ReferenceValue, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar tamanho: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSizeNotFound
	}

	return nil
}

// Delete implementa catalog.SizeRepository.Delete (hard delete)
func (r *PostgresSizeRepository) Delete(ctx context.Context, id, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"DELETE FROM sizes WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao remover tamanho: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSizeNotFound
	}

	return nil
}

// ListByBranch implementa catalog.SizeRepository.ListByBranch
func (r *PostgresSizeRepository) ListByBranch(ctx context.Context, branchID string) ([]*catalog.Size, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT id, branch_id, name, reference_value, created_at, updated_at FROM sizes WHERE branch_id = $1 ORDER BY reference_value, name",
		branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tamanhos: %w", err)
	}
	defer rows.Close()

	sizes := make([]*catalog.Size, 0)
	for rows.Next() {
		s := &catalog.Size{}
		if err := rows.Scan(&s.ID, &s.BranchID, &s.Name, &s.ReferenceValue, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler tamanho: %w", err)
		}
		sizes = append(sizes, s)
	}

	return sizes, rows.Err()
}
