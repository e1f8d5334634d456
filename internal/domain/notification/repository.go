package notification

import (
	"context"
)

// Repository define as operações de persistência para notificações
type Repository interface {
	// Create persiste uma nova notificação. Notificações com o mesmo
	// reference_id na filial não são duplicadas.
	Create(ctx context.Context, notification *Notification) error

	// ListByBranch retorna as notificações da filial, mais recentes primeiro
	ListByBranch(ctx context.Context, branchID string) ([]*Notification, error)

	// ListUnread retorna as notificações não lidas da filial
	ListUnread(ctx context.Context, branchID string) ([]*Notification, error)

	// MarkRead marca uma notificação como lida
	MarkRead(ctx context.Context, id, branchID string) error

	// MarkAllRead marca todas as notificações da filial como lidas
	MarkAllRead(ctx context.Context, branchID string) error

	// ExistsByReference verifica se já existe notificação com o reference_id
	ExistsByReference(ctx context.Context, branchID string, notifType Type, referenceID string) (bool, error)
}
