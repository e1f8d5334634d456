package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/notification"
	"github.com/dscosta/pos-confeitaria/internal/infrastructure/database"
)

var (
	ErrNotificationNotFound = errors.New("notificação não encontrada")
)

// PostgresNotificationRepository implementa a interface notification.Repository usando PostgreSQL
type PostgresNotificationRepository struct {
	db *database.PostgresDB
}

// NewPostgresNotificationRepository cria uma nova instância de PostgresNotificationRepository
func NewPostgresNotificationRepository(db *database.PostgresDB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

const notificationColumns = `id, branch_id, COALESCE(user_id::text, ''), type, title, message, reference_id, read, created_at`

// Create implementa notification.Repository.Create. O índice único parcial
// em (branch_id, type, reference_id) absorve inserções repetidas do mesmo
// lembrete via ON CONFLICT DO NOTHING.
func (r *PostgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO notifications (id, branch_id, user_id, type, title, message, reference_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (branch_id, type, reference_id) WHERE reference_id <> '' DO NOTHING
	`

	_, err = conn.Exec(ctx, query,
		n.ID, n.BranchID, nullableID(n.UserID), n.Type, n.Title, n.Message,
		n.ReferenceID, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir notificação: %w", err)
	}

	return nil
}

// ListByBranch implementa notification.Repository.ListByBranch
func (r *PostgresNotificationRepository) ListByBranch(ctx context.Context, branchID string) ([]*notification.Notification, error) {
	return r.list(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE branch_id = $1 ORDER BY created_at DESC",
		branchID,
	)
}

// ListUnread implementa notification.Repository.ListUnread
func (r *PostgresNotificationRepository) ListUnread(ctx context.Context, branchID string) ([]*notification.Notification, error) {
	return r.list(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE branch_id = $1 AND read = FALSE ORDER BY created_at DESC",
		branchID,
	)
}

// MarkRead implementa notification.Repository.MarkRead
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE id = $1 AND branch_id = $2",
		id, branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao marcar notificação como lida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead implementa notification.Repository.MarkAllRead
func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, branchID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE branch_id = $1 AND read = FALSE",
		branchID,
	)
	if err != nil {
		return fmt.Errorf("falha ao marcar notificações como lidas: %w", err)
	}

	return nil
}

// ExistsByReference implementa notification.Repository.ExistsByReference
func (r *PostgresNotificationRepository) ExistsByReference(ctx context.Context, branchID string, notifType notification.Type, referenceID string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM notifications WHERE branch_id = $1 AND type = $2 AND reference_id = $3)",
		branchID, notifType, referenceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar notificação: %w", err)
	}

	return exists, nil
}

func (r *PostgresNotificationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*notification.Notification, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		n := &notification.Notification{}
		err := rows.Scan(&n.ID, &n.BranchID, &n.UserID, &n.Type, &n.Title,
			&n.Message, &n.ReferenceID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler notificação: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
