package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/ingredient"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrIngredientNotFound = errors.New("ingrediente não encontrado")
)

// PostgresIngredientRepository implementa a interface ingredient.Repository usando PostgreSQL
type PostgresIngredientRepository struct {
	db *database.PostgresDB
}

// NewPostgresIngredientRepository cria uma nova instância de PostgresIngredientRepository
func NewPostgresIngredientRepository(db *database.PostgresDB) *PostgresIngredientRepository {
	return &PostgresIngredientRepository{db: db}
}

const ingredientColumns = `id, branch_id, name, quantity, min_quantity, unit, cost, created_at, updated_at`

// Create implementa ingredient.Repository.Create
func (r *PostgresIngredientRepository) Create(ctx context.Context, i *ingredient.Ingredient) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO ingredients (id, branch_id, name, quantity, min_quantity, unit, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = conn.Exec(ctx, query,
		i.ID, i.BranchID, i.Name, i.Quantity, i.MinQuantity, i.Unit, i.Cost,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir ingrediente: %w", err)
	}

	return nil
}

// FindByID implementa ingredient.Repository.FindByID
func (r *PostgresIngredientRepository) FindByID(ctx context.Context, id, branchID string) (*ingredient.Ingredient, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT "+ingredientColumns+" FROM ingredients WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)

	i, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("falha ao buscar ingrediente: %w", err)
	}

	return i, nil
}

// Update implementa ingredient.Repository.Update.
// A quantidade não é tocada aqui; ela só muda via AdjustQuantity.
func (r *PostgresIngredientRepository) Update(ctx context.Context, i *ingredient.Ingredient) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE ingredients
		SET name = $3, min_quantity = $4, unit = $5, cost = $6, updated_at = $7
		WHERE id = $1 AND branch_id = $2
	`

	tag, err := conn.Exec(ctx, query,
		i.ID, i.BranchID, i.Name, i.MinQuantity, i.Unit, i.Cost, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar ingrediente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrIngredientNotFound
	}

	return nil
}

// AdjustQuantity implementa ingredient.Repository.AdjustQuantity.
// A linha do ingrediente é travada com FOR UPDATE para que dois ajustes
// concorrentes não leiam o mesmo saldo; saldo e histórico são gravados
// na mesma transação.
func (r *PostgresIngredientRepository) AdjustQuantity(ctx context.Context, id, branchID string, delta float64, reason string) (*ingredient.Ingredient, error) {
	var adjusted *ingredient.Ingredient

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT "+ingredientColumns+" FROM ingredients WHERE id = $1 AND branch_id = $2 FOR UPDATE",
			id, branchID,
		)

		i, err := scanIngredient(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrIngredientNotFound
			}
			return fmt.Errorf("falha ao buscar ingrediente: %w", err)
		}

		entry, err := i.ApplyAdjustment(delta, reason)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			"UPDATE ingredients SET quantity = $3, updated_at = $4 WHERE id = $1 AND branch_id = $2",
			i.ID, i.BranchID, i.Quantity, i.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao atualizar quantidade: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO ingredient_history (id, ingredient_id, branch_id, type, quantity, reason, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			entry.ID, entry.IngredientID, entry.BranchID, entry.Type, entry.Quantity, entry.Reason, entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao gravar histórico: %w", err)
		}

		adjusted = i
		return nil
	})
	if err != nil {
		return nil, err
	}

	return adjusted, nil
}

// Delete implementa ingredient.Repository.Delete
func (r *PostgresIngredientRepository) Delete(ctx context.Context, id, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"DELETE FROM ingredients WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao excluir ingrediente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrIngredientNotFound
	}

	return nil
}

// ListByBranch implementa ingredient.Repository.ListByBranch
func (r *PostgresIngredientRepository) ListByBranch(ctx context.Context, branchID string) ([]*ingredient.Ingredient, error) {
	return r.list(ctx,
		"SELECT "+ingredientColumns+" FROM ingredients WHERE branch_id = $1 ORDER BY name",
		branchID,
	)
}

// ListLowStock implementa ingredient.Repository.ListLowStock
func (r *PostgresIngredientRepository) ListLowStock(ctx context.Context, branchID string) ([]*ingredient.Ingredient, error) {
	return r.list(ctx,
		"SELECT "+ingredientColumns+" FROM ingredients WHERE branch_id = $1 AND quantity < min_quantity ORDER BY name",
		branchID,
	)
}

// ListHistory implementa ingredient.Repository.ListHistory
func (r *PostgresIngredientRepository) ListHistory(ctx context.Context, ingredientID, branchID string) ([]*ingredient.HistoryEntry, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, ingredient_id, branch_id, type, quantity, reason, created_at
		FROM ingredient_history
		WHERE ingredient_id = $1 AND branch_id = $2
		ORDER BY created_at DESC`,
		ingredientID, branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar histórico: %w", err)
	}
	defer rows.Close()

	entries := make([]*ingredient.HistoryEntry, 0)
	for rows.Next() {
		e := &ingredient.HistoryEntry{}
		err := rows.Scan(&e.ID, &e.IngredientID, &e.BranchID, &e.Type, &e.Quantity, &e.Reason, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler histórico: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *PostgresIngredientRepository) list(ctx context.Context, query string, args ...interface{}) ([]*ingredient.Ingredient, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar ingredientes: %w", err)
	}
	defer rows.Close()

	ingredients := make([]*ingredient.Ingredient, 0)
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler ingrediente: %w", err)
		}
		ingredients = append(ingredients, i)
	}

	return ingredients, rows.Err()
}

func scanIngredient(row pgx.Row) (*ingredient.Ingredient, error) {
	i := &ingredient.Ingredient{}
	err := row.Scan(
		&i.ID, &i.BranchID, &i.Name, &i.Quantity, &i.MinQuantity, &i.Unit,
		&i.Cost, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}
