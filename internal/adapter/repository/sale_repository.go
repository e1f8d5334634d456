package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// PostgresSaleRepository implementa a interface sale.Repository usando PostgreSQL
type PostgresSaleRepository struct {
	db *database.PostgresDB
}

// NewPostgresSaleRepository cria uma nova instância de PostgresSaleRepository
func NewPostgresSaleRepository(db *database.PostgresDB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

const saleColumns = `id, branch_id, COALESCE(customer_id::text, ''), items, total, total_cost, profit, payment_method, status, date, created_at, updated_at`

// CreateWithEffects implementa sale.Repository.CreateWithEffects.
// A venda, o desconto de estoque e a atualização do cliente são gravados
// na mesma transação: ou tudo entra ou nada entra. O estoque tem piso em
// zero via GREATEST, espelhando a regra do domínio.
func (r *PostgresSaleRepository) CreateWithEffects(ctx context.Context, s *sale.Sale, adjustments []sale.StockAdjustment, effects *sale.CustomerEffects) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("falha ao serializar itens: %w", err)
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO sales (id, branch_id, customer_id, items, total, total_cost, profit, payment_method, status, date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`

		_, err := tx.Exec(ctx, query,
			s.ID, s.BranchID, nullableID(s.CustomerID), items, s.Total, s.TotalCost,
			s.Profit, s.PaymentMethod, s.Status, s.Date, s.CreatedAt, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir venda: %w", err)
		}

		for _, adj := range adjustments {
			tag, err := tx.Exec(ctx,
				"UPDATE products SET stock = GREATEST(stock - $3, 0), updated_at = NOW() WHERE id = $1 AND branch_id = $2",
				adj.ProductID, s.BranchID, adj.Quantity,
			)
			if err != nil {
				return fmt.Errorf("falha ao descontar estoque: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return ErrProductNotFound
			}
		}

		if effects != nil {
			tag, err := tx.Exec(ctx, `
				UPDATE customers
				SET loyalty_points = loyalty_points + $3,
					loyalty_level_id = COALESCE($4, loyalty_level_id),
					total_orders = total_orders + 1,
					updated_at = NOW()
				WHERE id = $1 AND branch_id = $2`,
				effects.CustomerID, s.BranchID, effects.PointsAwarded, nullableID(effects.NewLevelID),
			)
			if err != nil {
				return fmt.Errorf("falha ao atualizar cliente: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return ErrCustomerNotFound
			}
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *PostgresSaleRepository) FindByID(ctx context.Context, id, branchID string) (*sale.Sale, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT "+saleColumns+" FROM sales WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("falha ao buscar venda: %w", err)
	}

	return s, nil
}

// ListByBranch implementa sale.Repository.ListByBranch
func (r *PostgresSaleRepository) ListByBranch(ctx context.Context, branchID string) ([]*sale.Sale, error) {
	return r.list(ctx,
		"SELECT "+saleColumns+" FROM sales WHERE branch_id = $1 ORDER BY date DESC",
		branchID,
	)
}

// ListByDateRange implementa sale.Repository.ListByDateRange
func (r *PostgresSaleRepository) ListByDateRange(ctx context.Context, branchID string, from, to time.Time) ([]*sale.Sale, error) {
	return r.list(ctx,
		"SELECT "+saleColumns+" FROM sales WHERE branch_id = $1 AND date >= $2 AND date < $3 ORDER BY date",
		branchID, from, to,
	)
}

// ListByCustomer implementa sale.Repository.ListByCustomer
func (r *PostgresSaleRepository) ListByCustomer(ctx context.Context, customerID, branchID string) ([]*sale.Sale, error) {
	return r.list(ctx,
		"SELECT "+saleColumns+" FROM sales WHERE customer_id = $1 AND branch_id = $2 ORDER BY date DESC",
		customerID, branchID,
	)
}

// CountByCustomer implementa sale.Repository.CountByCustomer
func (r *PostgresSaleRepository) CountByCustomer(ctx context.Context, customerID, branchID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var total int
	err = conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM sales WHERE customer_id = $1 AND branch_id = $2",
		customerID, branchID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar vendas: %w", err)
	}

	return total, nil
}

func (r *PostgresSaleRepository) list(ctx context.Context, query string, args ...interface{}) ([]*sale.Sale, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	s := &sale.Sale{}
	var itemsJSON []byte

	err := row.Scan(
		&s.ID, &s.BranchID, &s.CustomerID, &itemsJSON, &s.Total, &s.TotalCost,
		&s.Profit, &s.PaymentMethod, &s.Status, &s.Date, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
		return nil, fmt.Errorf("falha ao desserializar itens: %w", err)
	}

	return s, nil
}
