package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// PostgresLoyaltyRepository implementa a interface loyalty.Repository usando PostgreSQL
type PostgresLoyaltyRepository struct {
	db *database.PostgresDB
}

// NewPostgresLoyaltyRepository cria uma nova instância de PostgresLoyaltyRepository
func NewPostgresLoyaltyRepository(db *database.PostgresDB) *PostgresLoyaltyRepository {
	return &PostgresLoyaltyRepository{db: db}
}

// CreateLevel implementa loyalty.Repository.CreateLevel
func (r *PostgresLoyaltyRepository) CreateLevel(ctx context.Context, level *loyalty.Level) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	benefits, err := json.Marshal(level.Benefits)
	if err != nil {
		return fmt.Errorf("falha ao serializar benefícios: %w", err)
	}

	query := `
		INSERT INTO loyalty_levels (id, branch_id, name, minimum_points, discount_percentage, benefits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = conn.Exec(ctx, query,
		level.ID, level.BranchID, level.Name, level.MinimumPoints,
		level.DiscountPercentage, benefits, level.CreatedAt, level.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return loyalty.ErrDuplicateMinPoints
		}
		return fmt.Errorf("falha ao inserir nível: %w", err)
	}

	return nil
}

// FindLevelByID implementa loyalty.Repository.FindLevelByID
func (r *PostgresLoyaltyRepository) FindLevelByID(ctx context.Context, id, branchID string) (*loyalty.Level, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
		SELECT id, branch_id, name, minimum_points, discount_percentage, benefits, created_at, updated_at
		FROM loyalty_levels WHERE id = $1 AND branch_id = $2`,
		id, branchID,
	)

	level, err := scanLevel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loyalty.ErrLevelNotFound
		}
		return nil, fmt.Errorf("falha ao buscar nível: %w", err)
	}

	return level, nil
}

// ListLevels implementa loyalty.Repository.ListLevels
func (r *PostgresLoyaltyRepository) ListLevels(ctx context.Context, branchID string) ([]*loyalty.Level, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, branch_id, name, minimum_points, discount_percentage, benefits, created_at, updated_at
		FROM loyalty_levels WHERE branch_id = $1 ORDER BY minimum_points`,
		branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar níveis: %w", err)
	}
	defer rows.Close()

	levels := make([]*loyalty.Level, 0)
	for rows.Next() {
		level, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler nível: %w", err)
		}
		levels = append(levels, level)
	}

	return levels, rows.Err()
}

// CountLevels implementa loyalty.Repository.CountLevels
func (r *PostgresLoyaltyRepository) CountLevels(ctx context.Context, branchID string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM loyalty_levels WHERE branch_id = $1", branchID)
}

// CreateReward implementa loyalty.Repository.CreateReward
func (r *PostgresLoyaltyRepository) CreateReward(ctx context.Context, reward *loyalty.Reward) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO loyalty_rewards (id, branch_id, name, description, points_required, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = conn.Exec(ctx, query,
		reward.ID, reward.BranchID, reward.Name, reward.Description,
		reward.PointsRequired, reward.Active, reward.CreatedAt, reward.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir recompensa: %w", err)
	}

	return nil
}

// FindRewardByID implementa loyalty.Repository.FindRewardByID
func (r *PostgresLoyaltyRepository) FindRewardByID(ctx context.Context, id, branchID string) (*loyalty.Reward, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
		SELECT id, branch_id, name, description, points_required, active, created_at, updated_at
		FROM loyalty_rewards WHERE id = $1 AND branch_id = $2`,
		id, branchID,
	)

	reward, err := scanReward(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loyalty.ErrRewardNotFound
		}
		return nil, fmt.Errorf("falha ao buscar recompensa: %w", err)
	}

	return reward, nil
}

// UpdateReward implementa loyalty.Repository.UpdateReward
func (r *PostgresLoyaltyRepository) UpdateReward(ctx context.Context, reward *loyalty.Reward) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE loyalty_rewards
		SET name = $3, description = $4, points_required = $5, active = $6, updated_at = $7
		WHERE id = $1 AND branch_id = $2
	`

	tag, err := conn.Exec(ctx, query,
		reward.ID, reward.BranchID, reward.Name, reward.Description,
		reward.PointsRequired, reward.Active, reward.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar recompensa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return loyalty.ErrRewardNotFound
	}

	return nil
}

// ListRewards implementa loyalty.Repository.ListRewards
func (r *PostgresLoyaltyRepository) ListRewards(ctx context.Context, branchID string) ([]*loyalty.Reward, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, branch_id, name, description, points_required, active, created_at, updated_at
		FROM loyalty_rewards WHERE branch_id = $1 ORDER BY points_required`,
		branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar recompensas: %w", err)
	}
	defer rows.Close()

	rewards := make([]*loyalty.Reward, 0)
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler recompensa: %w", err)
		}
		rewards = append(rewards, reward)
	}

	return rewards, rows.Err()
}

// CountRewards implementa loyalty.Repository.CountRewards
func (r *PostgresLoyaltyRepository) CountRewards(ctx context.Context, branchID string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM loyalty_rewards WHERE branch_id = $1", branchID)
}

// RedeemReward implementa loyalty.Repository.RedeemReward.
// O saldo do cliente é verificado e deduzido na mesma transação em que o
// resgate é gravado, com a linha do cliente travada por FOR UPDATE.
func (r *PostgresLoyaltyRepository) RedeemReward(ctx context.Context, redemption *loyalty.Redemption) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var points int
		err := tx.QueryRow(ctx,
			"SELECT loyalty_points FROM customers WHERE id = $1 AND branch_id = $2 FOR UPDATE",
			redemption.CustomerID, redemption.BranchID,
		).Scan(&points)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("falha ao buscar saldo do cliente: %w", err)
		}

		if points < redemption.PointsRedeemed {
			return loyalty.ErrInsufficientPoints
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO loyalty_redemptions (id, branch_id, customer_id, reward_id, reward_name, points_redeemed, redeemed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			redemption.ID, redemption.BranchID, redemption.CustomerID,
			redemption.RewardID, redemption.RewardName, redemption.PointsRedeemed, redemption.RedeemedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao gravar resgate: %w", err)
		}

		_, err = tx.Exec(ctx,
			"UPDATE customers SET loyalty_points = loyalty_points - $3, updated_at = NOW() WHERE id = $1 AND branch_id = $2",
			redemption.CustomerID, redemption.BranchID, redemption.PointsRedeemed,
		)
		if err != nil {
			return fmt.Errorf("falha ao deduzir pontos: %w", err)
		}

		return nil
	})
}

// ListRedemptions implementa loyalty.Repository.ListRedemptions
func (r *PostgresLoyaltyRepository) ListRedemptions(ctx context.Context, customerID, branchID string) ([]*loyalty.Redemption, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, branch_id, customer_id, reward_id, reward_name, points_redeemed, redeemed_at
		FROM loyalty_redemptions
		WHERE customer_id = $1 AND branch_id = $2
		ORDER BY redeemed_at DESC`,
		customerID, branchID,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar resgates: %w", err)
	}
	defer rows.Close()

	redemptions := make([]*loyalty.Redemption, 0)
	for rows.Next() {
		red := &loyalty.Redemption{}
		err := rows.Scan(&red.ID, &red.BranchID, &red.CustomerID, &red.RewardID,
			&red.RewardName, &red.PointsRedeemed, &red.RedeemedAt)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler resgate: %w", err)
		}
		redemptions = append(redemptions, red)
	}

	return redemptions, rows.Err()
}

func (r *PostgresLoyaltyRepository) count(ctx context.Context, query, branchID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var total int
	if err := conn.QueryRow(ctx, query, branchID).Scan(&total); err != nil {
		return 0, fmt.Errorf("falha ao contar registros: %w", err)
	}

	return total, nil
}

func scanLevel(row pgx.Row) (*loyalty.Level, error) {
	level := &loyalty.Level{}
	var benefitsJSON []byte

	err := row.Scan(
		&level.ID, &level.BranchID, &level.Name, &level.MinimumPoints,
		&level.DiscountPercentage, &benefitsJSON, &level.CreatedAt, &level.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(benefitsJSON, &level.Benefits); err != nil {
		return nil, fmt.Errorf("falha ao desserializar benefícios: %w", err)
	}

	return level, nil
}

func scanReward(row pgx.Row) (*loyalty.Reward, error) {
	reward := &loyalty.Reward{}
	err := row.Scan(
		&reward.ID, &reward.BranchID, &reward.Name, &reward.Description,
		&reward.PointsRequired, &reward.Active, &reward.CreatedAt, &reward.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reward, nil
}
