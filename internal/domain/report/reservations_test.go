package report

import (
	"testing"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationWith(t *testing.T, status reservation.Status, delivery time.Time, items []reservation.Item) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(
		"branch-1", "Cliente", "", "", "",
		delivery.AddDate(0, 0, -2), delivery,
		items, "pix", false, 0, "", "",
	)
	require.NoError(t, err)
	r.Status = status
	return r
}

func TestReservationsByStatus(t *testing.T) {
	loc := time.UTC
	delivery := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	items := []reservation.Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 1, Price: 100}}

	reservations := []*reservation.Reservation{
		reservationWith(t, reservation.StatusPending, delivery, items),
		reservationWith(t, reservation.StatusPending, delivery, items),
		reservationWith(t, reservation.StatusCompleted, delivery, items),
	}

	summaries := ReservationsByStatus(reservations)
	require.Len(t, summaries, 3)

	assert.Equal(t, reservation.StatusPending, summaries[0].Status)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, 200.0, summaries[0].PendingValue)

	assert.Equal(t, reservation.StatusCompleted, summaries[1].Status)
	assert.Equal(t, 1, summaries[1].Count)

	// Status sem encomendas aparece zerado
	assert.Equal(t, reservation.StatusCancelled, summaries[2].Status)
	assert.Zero(t, summaries[2].Count)
}

func TestReservationsByWeekday(t *testing.T) {
	loc := time.UTC
	items := []reservation.Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 1, Price: 100}}

	// 2026-03-01 é domingo, 2026-03-07 é sábado
	reservations := []*reservation.Reservation{
		reservationWith(t, reservation.StatusPending, time.Date(2026, 3, 1, 10, 0, 0, 0, loc), items),
		reservationWith(t, reservation.StatusPending, time.Date(2026, 3, 7, 10, 0, 0, 0, loc), items),
		reservationWith(t, reservation.StatusPending, time.Date(2026, 3, 14, 10, 0, 0, 0, loc), items),
	}

	counts := ReservationsByWeekday(reservations)
	require.Len(t, counts, 7)

	assert.Equal(t, "Domingo", counts[0].Weekday)
	assert.Equal(t, 1, counts[0].Count)
	assert.Equal(t, "Sábado", counts[6].Weekday)
	assert.Equal(t, 2, counts[6].Count)

	for idx := 1; idx < 6; idx++ {
		assert.Zero(t, counts[idx].Count)
	}
}

func TestTopReservedProducts(t *testing.T) {
	loc := time.UTC
	delivery := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	reservations := []*reservation.Reservation{
		reservationWith(t, reservation.StatusPending, delivery, []reservation.Item{
			{ProductID: "p1", ProductName: "Bolo", Quantity: 2, Price: 50},
			{ProductID: "p2", ProductName: "Torta", Quantity: 1, Price: 40},
		}),
		reservationWith(t, reservation.StatusCompleted, delivery, []reservation.Item{
			{ProductID: "p2", ProductName: "Torta", Quantity: 4, Price: 40},
		}),
	}

	top := TopReservedProducts(reservations)
	require.Len(t, top, 2)

	assert.Equal(t, "p2", top[0].ProductID)
	assert.Equal(t, 5, top[0].Quantity)
	assert.Equal(t, "p1", top[1].ProductID)
}
