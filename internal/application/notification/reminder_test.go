package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscosta/pos-confeitaria/internal/domain/ingredient"
	"github.com/dscosta/pos-confeitaria/internal/domain/notification"
	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

type fakeNotificationRepo struct {
	notifications []*notification.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) ListByBranch(ctx context.Context, branchID string) ([]*notification.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepo) ListUnread(ctx context.Context, branchID string) ([]*notification.Notification, error) {
	var out []*notification.Notification
	for _, n := range r.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, branchID string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, branchID string) error {
	for _, n := range r.notifications {
		n.Read = true
	}
	return nil
}

func (r *fakeNotificationRepo) ExistsByReference(ctx context.Context, branchID string, notifType notification.Type, referenceID string) (bool, error) {
	for _, n := range r.notifications {
		if n.Type == notifType && n.ReferenceID == referenceID {
			return true, nil
		}
	}
	return false, nil
}

// fakeReservationLister cobre só o que o ReminderService usa.
type fakeReservationLister struct {
	reservation.Repository
	upcoming []*reservation.Reservation
}

func (r *fakeReservationLister) ListUpcoming(ctx context.Context, branchID string, days int) ([]*reservation.Reservation, error) {
	return r.upcoming, nil
}

type fakeIngredientLister struct {
	ingredient.Repository
	low []*ingredient.Ingredient
}

func (r *fakeIngredientLister) ListLowStock(ctx context.Context, branchID string) ([]*ingredient.Ingredient, error) {
	return r.low, nil
}

const testBranchID = "filial-1"

func reservationDueOn(t *testing.T, delivery time.Time) *reservation.Reservation {
	t.Helper()

	r, err := reservation.NewReservation(
		testBranchID, "Ana Lima", "11977776666", "", "",
		delivery.AddDate(0, 0, -3), delivery,
		[]reservation.Item{{ProductID: "p1", ProductName: "Torta de morango", Quantity: 1, Price: 80.0}},
		"pix", false, 0, "", "",
	)
	require.NoError(t, err)
	return r
}

func TestScheduleDeliveryReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

	t.Run("cria lembretes para hoje e amanhã", func(t *testing.T) {
		notifications := &fakeNotificationRepo{}
		reservations := &fakeReservationLister{upcoming: []*reservation.Reservation{
			reservationDueOn(t, time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)),
			reservationDueOn(t, time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)),
		}}
		svc := NewReminderService(notifications, reservations, &fakeIngredientLister{}, noopLogger{})

		created, err := svc.ScheduleDeliveryReminders(ctx, testBranchID, now)
		require.NoError(t, err)
		assert.Equal(t, 2, created)

		require.Len(t, notifications.notifications, 2)
		assert.Equal(t, "Encomenda para entrega hoje", notifications.notifications[0].Title)
		assert.Equal(t, "Encomenda para entrega amanhã", notifications.notifications[1].Title)
		assert.Equal(t, notification.TypeReservation, notifications.notifications[0].Type)
		assert.Contains(t, notifications.notifications[0].Message, "Ana Lima")
	})

	t.Run("segunda execução no mesmo dia não duplica", func(t *testing.T) {
		notifications := &fakeNotificationRepo{}
		reservations := &fakeReservationLister{upcoming: []*reservation.Reservation{
			reservationDueOn(t, time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)),
		}}
		svc := NewReminderService(notifications, reservations, &fakeIngredientLister{}, noopLogger{})

		created, err := svc.ScheduleDeliveryReminders(ctx, testBranchID, now)
		require.NoError(t, err)
		assert.Equal(t, 1, created)

		created, err = svc.ScheduleDeliveryReminders(ctx, testBranchID, now)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
		assert.Len(t, notifications.notifications, 1)
	})

	t.Run("entregas fora da janela são ignoradas", func(t *testing.T) {
		notifications := &fakeNotificationRepo{}
		reservations := &fakeReservationLister{upcoming: []*reservation.Reservation{
			reservationDueOn(t, time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)),
		}}
		svc := NewReminderService(notifications, reservations, &fakeIngredientLister{}, noopLogger{})

		created, err := svc.ScheduleDeliveryReminders(ctx, testBranchID, now)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})
}

func TestScheduleLowStockAlerts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

	flour, err := ingredient.NewIngredient(testBranchID, "Farinha de trigo", 2.0, 10.0, "kg", 5.5)
	require.NoError(t, err)

	t.Run("cria alerta com status e quantidades", func(t *testing.T) {
		notifications := &fakeNotificationRepo{}
		ingredients := &fakeIngredientLister{low: []*ingredient.Ingredient{flour}}
		svc := NewReminderService(notifications, &fakeReservationLister{}, ingredients, noopLogger{})

		created, err := svc.ScheduleLowStockAlerts(ctx, testBranchID, now)
		require.NoError(t, err)
		assert.Equal(t, 1, created)

		require.Len(t, notifications.notifications, 1)
		alert := notifications.notifications[0]
		assert.Equal(t, notification.TypeInventory, alert.Type)
		assert.Contains(t, alert.Title, "Farinha de trigo")
		assert.Contains(t, alert.Message, "2.00 kg")
	})

	t.Run("no máximo um alerta por ingrediente por dia", func(t *testing.T) {
		notifications := &fakeNotificationRepo{}
		ingredients := &fakeIngredientLister{low: []*ingredient.Ingredient{flour}}
		svc := NewReminderService(notifications, &fakeReservationLister{}, ingredients, noopLogger{})

		_, err := svc.ScheduleLowStockAlerts(ctx, testBranchID, now)
		require.NoError(t, err)

		created, err := svc.ScheduleLowStockAlerts(ctx, testBranchID, now)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
		assert.Len(t, notifications.notifications, 1)

		// No dia seguinte o alerta volta a ser criado.
		created, err = svc.ScheduleLowStockAlerts(ctx, testBranchID, now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})
}
