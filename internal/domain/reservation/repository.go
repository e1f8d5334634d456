package reservation

import (
	"context"
	"time"
)

// Repository define as operações de persistência para encomendas
type Repository interface {
	// Create persiste uma nova encomenda
	Create(ctx context.Context, reservation *Reservation) error

	// FindByID busca uma encomenda pelo ID dentro da filial
	FindByID(ctx context.Context, id, branchID string) (*Reservation, error)

	// Update atualiza uma encomenda existente
	Update(ctx context.Context, reservation *Reservation) error

	// UpdateStatus grava apenas a mudança de status
	UpdateStatus(ctx context.Context, id, branchID string, status Status) error

	// ListByBranch retorna as encomendas da filial, mais recentes primeiro
	ListByBranch(ctx context.Context, branchID string) ([]*Reservation, error)

	// ListByStatus retorna as encomendas da filial com o status dado
	ListByStatus(ctx context.Context, branchID string, status Status) ([]*Reservation, error)

	// ListByDateRange retorna as encomendas da filial com entrega no período
	ListByDateRange(ctx context.Context, branchID string, from, to time.Time) ([]*Reservation, error)

	// ListUpcoming retorna as encomendas pendentes com entrega nos próximos
	// N dias
	ListUpcoming(ctx context.Context, branchID string, days int) ([]*Reservation, error)
}
