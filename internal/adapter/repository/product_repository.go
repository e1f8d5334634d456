package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// PostgresProductRepository implementa a interface product.Repository usando PostgreSQL
type PostgresProductRepository struct {
	db *database.PostgresDB
}

// NewPostgresProductRepository cria uma nova instância de PostgresProductRepository
func NewPostgresProductRepository(db *database.PostgresDB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, branch_id, name, description, price, cost_price, stock, category, sizes, active, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *PostgresProductRepository) Create(ctx context.Context, p *product.Product) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return fmt.Errorf("falha ao serializar tamanhos: %w", err)
	}

	query := `
		INSERT INTO products (id, branch_id, name, description, price, cost_price, stock, category, sizes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = conn.Exec(ctx, query,
		p.ID, p.BranchID, p.Name, p.Description, p.Price, p.CostPrice,
		p.Stock, p.Category, sizes, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *PostgresProductRepository) FindByID(ctx context.Context, id, branchID string) (*product.Product, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("falha ao buscar produto: %w", err)
	}

	return p, nil
}

// Update implementa product.Repository.Update
func (r *PostgresProductRepository) Update(ctx context.Context, p *product.Product) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return fmt.Errorf("falha ao serializar tamanhos: %w", err)
	}

	query := `
		UPDATE products
		SET name = $3, description = $4, price = $5, cost_price = $6, stock = $7,
			category = $8, sizes = $9, active = $10, updated_at = $11
		WHERE id = $1 AND branch_id = $2
	`

	tag, err := conn.Exec(ctx, query,
		p.ID, p.BranchID, p.Name, p.Description, p.Price, p.CostPrice,
		p.Stock, p.Category, sizes, p.Active, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdateStock implementa product.Repository.UpdateStock.
// Só o estoque é tocado; os demais campos, inclusive os tamanhos,
// permanecem como estão.
func (r *PostgresProductRepository) UpdateStock(ctx context.Context, id, branchID string, stock int) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE products SET stock = $3, updated_at = NOW() WHERE id = $1 AND branch_id = $2",
		id, branchID, stock,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Deactivate implementa product.Repository.Deactivate (soft delete)
func (r *PostgresProductRepository) Deactivate(ctx context.Context, id, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE products SET active = FALSE, updated_at = NOW() WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao desativar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// ListByBranch implementa product.Repository.ListByBranch
func (r *PostgresProductRepository) ListByBranch(ctx context.Context, branchID string) ([]*product.Product, error) {
	return r.list(ctx,
		"SELECT "+productColumns+" FROM products WHERE branch_id = $1 AND active = TRUE ORDER BY name",
		branchID,
	)
}

// ListByCategory implementa product.Repository.ListByCategory
func (r *PostgresProductRepository) ListByCategory(ctx context.Context, branchID, category string) ([]*product.Product, error) {
	return r.list(ctx,
		"SELECT "+productColumns+" FROM products WHERE branch_id = $1 AND category = $2 AND active = TRUE ORDER BY name",
		branchID, category,
	)
}

// ListLowStock implementa product.Repository.ListLowStock
func (r *PostgresProductRepository) ListLowStock(ctx context.Context, branchID string, threshold int) ([]*product.Product, error) {
	return r.list(ctx,
		"SELECT "+productColumns+" FROM products WHERE branch_id = $1 AND stock < $2 AND active = TRUE ORDER BY stock, name",
		branchID, threshold,
	)
}

// list é o auxiliar comum às consultas de listagem
func (r *PostgresProductRepository) list(ctx context.Context, query string, args ...interface{}) ([]*product.Product, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// scanProduct lê uma linha de produto, desserializando os tamanhos do JSONB
func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	var sizesJSON []byte

	err := row.Scan(
		&p.ID, &p.BranchID, &p.Name, &p.Description, &p.Price, &p.CostPrice,
		&p.Stock, &p.Category, &sizesJSON, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(sizesJSON, &p.Sizes); err != nil {
		return nil, fmt.Errorf("falha ao desserializar tamanhos: %w", err)
	}

	return p, nil
}
