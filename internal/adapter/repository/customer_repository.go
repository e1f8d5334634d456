package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// PostgresCustomerRepository implementa a interface customer.Repository usando PostgreSQL
type PostgresCustomerRepository struct {
	db *database.PostgresDB
}

// NewPostgresCustomerRepository cria uma nova instância de PostgresCustomerRepository
func NewPostgresCustomerRepository(db *database.PostgresDB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

const customerColumns = `id, branch_id, name, email, phone, address, notes, loyalty_points, COALESCE(loyalty_level_id, ''), total_orders, status, created_at, updated_at`

// Create implementa customer.Repository.Create
func (r *PostgresCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO customers (id, branch_id, name, email, phone, address, notes, loyalty_points, loyalty_level_id, total_orders, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = conn.Exec(ctx, query,
		c.ID, c.BranchID, c.Name, c.Email, c.Phone, c.Address, c.Notes,
		c.LoyaltyPoints, nullableID(c.LoyaltyLevelID), c.TotalOrders, c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id, branchID string) (*customer.Customer, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	return c, nil
}

// Update implementa customer.Repository.Update
func (r *PostgresCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE customers
		SET name = $3, email = $4, phone = $5, address = $6, notes = $7,
			loyalty_points = $8, loyalty_level_id = $9, total_orders = $10,
			status = $11, updated_at = $12
		WHERE id = $1 AND branch_id = $2
	`

	tag, err := conn.Exec(ctx, query,
		c.ID, c.BranchID, c.Name, c.Email, c.Phone, c.Address, c.Notes,
		c.LoyaltyPoints, nullableID(c.LoyaltyLevelID), c.TotalOrders, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Deactivate implementa customer.Repository.Deactivate (soft delete)
func (r *PostgresCustomerRepository) Deactivate(ctx context.Context, id, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE customers SET status = 'inactive', updated_at = NOW() WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao desativar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// ListByBranch implementa customer.Repository.ListByBranch
func (r *PostgresCustomerRepository) ListByBranch(ctx context.Context, branchID string) ([]*customer.Customer, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE branch_id = $1 AND status = 'active' ORDER BY name",
		branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler cliente: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	c := &customer.Customer{}
	err := row.Scan(
		&c.ID, &c.BranchID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes,
		&c.LoyaltyPoints, &c.LoyaltyLevelID, &c.TotalOrders, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// nullableID converte string vazia em NULL para colunas com FK opcional
func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}
