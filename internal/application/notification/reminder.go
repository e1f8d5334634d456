package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/ingredient"
	"github.com/dscosta/pos-confeitaria/internal/domain/notification"
	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/pkg/logger"
)

// ReminderService gera notificações operacionais: lembretes de entrega de
// encomendas e alertas de estoque baixo de ingredientes.
type ReminderService struct {
	notificationRepo notification.Repository
	reservationRepo  reservation.Repository
	ingredientRepo   ingredient.Repository
	logger           logger.Logger
}

// NewReminderService cria uma nova instância de ReminderService
func NewReminderService(
	notificationRepo notification.Repository,
	reservationRepo reservation.Repository,
	ingredientRepo ingredient.Repository,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		notificationRepo: notificationRepo,
		reservationRepo:  reservationRepo,
		ingredientRepo:   ingredientRepo,
		logger:           logger,
	}
}

// ScheduleDeliveryReminders cria lembretes "entrega hoje"/"entrega amanhã"
// para encomendas pendentes. Idempotente por encomenda e dia: rodar duas
// vezes não duplica lembretes. Retorna quantos lembretes foram criados.
func (s *ReminderService) ScheduleDeliveryReminders(ctx context.Context, branchID string, now time.Time) (int, error) {
	upcoming, err := s.reservationRepo.ListUpcoming(ctx, branchID, 1)
	if err != nil {
		return 0, fmt.Errorf("falha ao listar encomendas próximas: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	created := 0

	for _, r := range upcoming {
		delivery := r.DeliveryDate
		deliveryDay := time.Date(delivery.Year(), delivery.Month(), delivery.Day(), 0, 0, 0, 0, delivery.Location())

		var title string
		switch {
		case deliveryDay.Equal(today):
			title = "Encomenda para entrega hoje"
		case deliveryDay.Equal(today.AddDate(0, 0, 1)):
			title = "Encomenda para entrega amanhã"
		default:
			continue
		}

		referenceID := fmt.Sprintf("%s:%s", r.ID, deliveryDay.Format("2006-01-02"))
		exists, err := s.notificationRepo.ExistsByReference(ctx, branchID, notification.TypeReservation, referenceID)
		if err != nil {
			return created, fmt.Errorf("falha ao verificar lembrete existente: %w", err)
		}
		if exists {
			continue
		}

		message := fmt.Sprintf("Encomenda de %s para %s", r.CustomerName, delivery.Format("02/01/2006"))
		n, err := notification.NewNotification(branchID, "", notification.TypeReservation, title, message, referenceID)
		if err != nil {
			return created, err
		}

		if err := s.notificationRepo.Create(ctx, n); err != nil {
			return created, fmt.Errorf("falha ao criar lembrete: %w", err)
		}
		created++
	}

	if created > 0 {
		s.logger.Info("lembretes de entrega criados", "branch_id", branchID, "count", created)
	}

	return created, nil
}

// ScheduleLowStockAlerts cria alertas para ingredientes abaixo do estoque
// mínimo, no máximo um por ingrediente por dia.
func (s *ReminderService) ScheduleLowStockAlerts(ctx context.Context, branchID string, now time.Time) (int, error) {
	low, err := s.ingredientRepo.ListLowStock(ctx, branchID)
	if err != nil {
		return 0, fmt.Errorf("falha ao listar ingredientes em falta: %w", err)
	}

	day := now.Format("2006-01-02")
	created := 0

	for _, ing := range low {
		referenceID := fmt.Sprintf("%s:%s", ing.ID, day)
		exists, err := s.notificationRepo.ExistsByReference(ctx, branchID, notification.TypeInventory, referenceID)
		if err != nil {
			return created, fmt.Errorf("falha ao verificar alerta existente: %w", err)
		}
		if exists {
			continue
		}

		title := fmt.Sprintf("Estoque %s: %s", ing.Status(), ing.Name)
		message := fmt.Sprintf("%s com %.2f %s em estoque (mínimo %.2f)",
			ing.Name, ing.Quantity, ing.Unit, ing.MinQuantity)

		n, err := notification.NewNotification(branchID, "", notification.TypeInventory, title, message, referenceID)
		if err != nil {
			return created, err
		}

		if err := s.notificationRepo.Create(ctx, n); err != nil {
			return created, fmt.Errorf("falha ao criar alerta: %w", err)
		}
		created++
	}

	if created > 0 {
		s.logger.Info("alertas de estoque criados", "branch_id", branchID, "count", created)
	}

	return created, nil
}
