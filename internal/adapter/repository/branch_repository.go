package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/branch"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório
var (
	ErrBranchNotFound = errors.New("filial não encontrada")
)

// PostgresBranchRepository implementa a interface branch.Repository usando PostgreSQL
type PostgresBranchRepository struct {
	db *database.PostgresDB
}

// NewPostgresBranchRepository cria uma nova instância de PostgresBranchRepository
func NewPostgresBranchRepository(db *database.PostgresDB) *PostgresBranchRepository {
	return &PostgresBranchRepository{db: db}
}

// Create implementa branch.Repository.Create
func (r *PostgresBranchRepository) Create(ctx context.Context, b *branch.Branch) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO branches (id, name, address, phone, email, manager, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = conn.Exec(ctx, query,
		b.ID, b.Name, b.Address, b.Phone, b.Email, b.Manager,
		string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir filial: %w", err)
	}

	return nil
}

// FindByID implementa branch.Repository.FindByID
func (r *PostgresBranchRepository) FindByID(ctx context.Context, id string) (*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT id, name, address, phone, email, manager, status, created_at, updated_at
		FROM branches WHERE id = $1
	`

	b := &branch.Branch{}
	var status string
	err = conn.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Address, &b.Phone, &b.Email, &b.Manager,
		&status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("falha ao buscar filial: %w", err)
	}

	b.Status = branch.Status(status)
	return b, nil
}

// Update implementa branch.Repository.Update
func (r *PostgresBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE branches
		SET name = $2, address = $3, phone = $4, email = $5, manager = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := conn.Exec(ctx, query,
		b.ID, b.Name, b.Address, b.Phone, b.Email, b.Manager,
		string(b.Status), b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar filial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// UpdateStatus implementa branch.Repository.UpdateStatus
func (r *PostgresBranchRepository) UpdateStatus(ctx context.Context, id string, status branch.Status) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE branches SET status = $2, updated_at = NOW() WHERE id = $1",
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status da filial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// List implementa branch.Repository.List
func (r *PostgresBranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT id, name, address, phone, email, manager, status, created_at, updated_at
		FROM branches ORDER BY name
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar filiais: %w", err)
	}
	defer rows.Close()

	branches := make([]*branch.Branch, 0)
	for rows.Next() {
		b := &branch.Branch{}
		var status string
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Address, &b.Phone, &b.Email, &b.Manager,
			&status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler filial: %w", err)
		}
		b.Status = branch.Status(status)
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

// Exists implementa branch.Repository.Exists
func (r *PostgresBranchRepository) Exists(ctx context.Context, id string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM branches WHERE id = $1 AND status = 'active')",
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar filial: %w", err)
	}

	return exists, nil
}

// ValidateBranch implementa a interface branch.Validator do middleware
func (r *PostgresBranchRepository) ValidateBranch(branchID string) (bool, error) {
	return r.Exists(context.Background(), branchID)
}
