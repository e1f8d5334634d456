package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/user"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound   = errors.New("usuário não encontrado")
	ErrDuplicateEmail = errors.New("já existe um usuário com este email")
)

// PostgresUserRepository implementa a interface user.Repository usando PostgreSQL
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository cria uma nova instância de PostgresUserRepository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, name, email, password, role, branch_ids, status, last_login_at, created_at, updated_at`

// Create implementa user.Repository.Create
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	branchIDs, err := json.Marshal(u.BranchIDs)
	if err != nil {
		return fmt.Errorf("falha ao serializar filiais: %w", err)
	}

	query := `
		INSERT INTO users (id, name, email, password, role, branch_ids, status, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = conn.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Password, u.Role, branchIDs, u.Status,
		u.LastLoginAt, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

// Update implementa user.Repository.Update
func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	branchIDs, err := json.Marshal(u.BranchIDs)
	if err != nil {
		return fmt.Errorf("falha ao serializar filiais: %w", err)
	}

	query := `
		UPDATE users
		SET name = $2, email = $3, password = $4, role = $5, branch_ids = $6,
			status = $7, last_login_at = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := conn.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Password, u.Role, branchIDs, u.Status,
		u.LastLoginAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Deactivate implementa user.Repository.Deactivate (soft delete)
func (r *PostgresUserRepository) Deactivate(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE users SET status = 'inactive', updated_at = NOW() WHERE id = $1",
		id,
	)
	if err != nil {
		return fmt.Errorf("falha ao desativar usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListByBranch implementa user.Repository.ListByBranch. Administradores e
// donos aparecem em qualquer filial; funcionários só na filial vinculada.
func (r *PostgresUserRepository) ListByBranch(ctx context.Context, branchID string) ([]*user.User, error) {
	return r.list(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE status = 'active' AND (role IN ('admin', 'owner') OR branch_ids @> $1)
		ORDER BY name`,
		fmt.Sprintf(`["%s"]`, branchID),
	)
}

// List implementa user.Repository.List
func (r *PostgresUserRepository) List(ctx context.Context) ([]*user.User, error) {
	return r.list(ctx, "SELECT "+userColumns+" FROM users WHERE status = 'active' ORDER BY name")
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	u, err := scanUser(conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return u, nil
}

func (r *PostgresUserRepository) list(ctx context.Context, query string, args ...interface{}) ([]*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	var branchIDsJSON []byte

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &branchIDsJSON,
		&u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(branchIDsJSON, &u.BranchIDs); err != nil {
		return nil, fmt.Errorf("falha ao desserializar filiais: %w", err)
	}

	return u, nil
}
