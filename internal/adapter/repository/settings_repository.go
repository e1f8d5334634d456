package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/settings"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSettingsNotFound = errors.New("configuração não encontrada")
)

// PostgresSettingsRepository implementa a interface settings.Repository usando PostgreSQL
type PostgresSettingsRepository struct {
	db *database.PostgresDB
}

// NewPostgresSettingsRepository cria uma nova instância de PostgresSettingsRepository
func NewPostgresSettingsRepository(db *database.PostgresDB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

const settingsColumns = `id, COALESCE(branch_id::text, ''), name, address, phone, email, theme, receipt_layout, created_at, updated_at`

// Save implementa settings.Repository.Save. A configuração global (sem
// filial) não pode usar ON CONFLICT na coluna nullable, então o upsert é
// feito em duas etapas dentro de uma transação.
func (r *PostgresSettingsRepository) Save(ctx context.Context, s *settings.StoreSettings) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var existingID string
		var err error
		if s.BranchID == "" {
			err = tx.QueryRow(ctx,
				"SELECT id FROM store_settings WHERE branch_id IS NULL FOR UPDATE",
			).Scan(&existingID)
		} else {
			err = tx.QueryRow(ctx,
				"SELECT id FROM store_settings WHERE branch_id = $1 FOR UPDATE",
				s.BranchID,
			).Scan(&existingID)
		}

		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("falha ao buscar configuração: %w", err)
			}

			_, err = tx.Exec(ctx, `
				INSERT INTO store_settings (id, branch_id, name, address, phone, email, theme, receipt_layout, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				s.ID, nullableID(s.BranchID), s.Name, s.Address, s.Phone, s.Email,
				s.Theme, s.ReceiptLayout, s.CreatedAt, s.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("falha ao inserir configuração: %w", err)
			}
			return nil
		}

		s.ID = existingID
		_, err = tx.Exec(ctx, `
			UPDATE store_settings
			SET name = $2, address = $3, phone = $4, email = $5, theme = $6,
				receipt_layout = $7, updated_at = $8
			WHERE id = $1`,
			s.ID, s.Name, s.Address, s.Phone, s.Email, s.Theme, s.ReceiptLayout, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao atualizar configuração: %w", err)
		}
		return nil
	})
}

// FindByBranch implementa settings.Repository.FindByBranch
func (r *PostgresSettingsRepository) FindByBranch(ctx context.Context, branchID string) (*settings.StoreSettings, error) {
	return r.findOne(ctx,
		"SELECT "+settingsColumns+" FROM store_settings WHERE branch_id = $1",
		branchID,
	)
}

// FindGlobal implementa settings.Repository.FindGlobal
func (r *PostgresSettingsRepository) FindGlobal(ctx context.Context) (*settings.StoreSettings, error) {
	return r.findOne(ctx,
		"SELECT " + settingsColumns + " FROM store_settings WHERE branch_id IS NULL",
	)
}

// Resolve implementa settings.Repository.Resolve
func (r *PostgresSettingsRepository) Resolve(ctx context.Context, branchID string) (*settings.StoreSettings, error) {
	s, err := r.FindByBranch(ctx, branchID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}
	return r.FindGlobal(ctx)
}

func (r *PostgresSettingsRepository) findOne(ctx context.Context, query string, args ...interface{}) (*settings.StoreSettings, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	s := &settings.StoreSettings{}
	err = conn.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.BranchID, &s.Name, &s.Address, &s.Phone, &s.Email,
		&s.Theme, &s.ReceiptLayout, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("falha ao buscar configuração: %w", err)
	}

	return s, nil
}
