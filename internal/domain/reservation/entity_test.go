package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{ProductID: "p1", ProductName: "Bolo de chocolate", Quantity: 2, Price: 45.0, Size: "M"},
		{ProductID: "p2", ProductName: "Brigadeiro", Quantity: 10, Price: 3.5},
	}
}

func newTestReservation(t *testing.T, hasAdvance bool, advance float64) *Reservation {
	t.Helper()
	date := time.Now()
	r, err := NewReservation(
		"branch-1", "Maria Silva", "11 99999-0000", "maria@example.com", "Rua A, 10",
		date, date.AddDate(0, 0, 3),
		testItems(),
		"pix",
		hasAdvance, advance, "pix",
		"sem lactose",
	)
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	t.Run("deriva total e saldo restante dos itens", func(t *testing.T) {
		r := newTestReservation(t, true, 50.0)
		assert.Equal(t, 125.0, r.Total)
		assert.Equal(t, 75.0, r.RemainingAmount)
		assert.Equal(t, StatusPending, r.Status)
	})

	t.Run("sem adiantamento o saldo é o total", func(t *testing.T) {
		r := newTestReservation(t, false, 0)
		assert.Equal(t, 125.0, r.Total)
		assert.Equal(t, 125.0, r.RemainingAmount)
	})

	t.Run("adiantamento acima do total é rejeitado", func(t *testing.T) {
		date := time.Now()
		_, err := NewReservation(
			"branch-1", "Maria Silva", "", "", "",
			date, date.AddDate(0, 0, 1),
			testItems(),
			"pix",
			true, 999.0, "pix",
			"",
		)
		assert.ErrorIs(t, err, ErrInvalidAdvanceAmount)
	})

	t.Run("adiantamento negativo é rejeitado", func(t *testing.T) {
		date := time.Now()
		_, err := NewReservation(
			"branch-1", "Maria Silva", "", "", "",
			date, date.AddDate(0, 0, 1),
			testItems(),
			"pix",
			true, -1.0, "pix",
			"",
		)
		assert.ErrorIs(t, err, ErrInvalidAdvanceAmount)
	})

	t.Run("adiantamento desmarcado zera os campos", func(t *testing.T) {
		date := time.Now()
		r, err := NewReservation(
			"branch-1", "Maria Silva", "", "", "",
			date, date.AddDate(0, 0, 1),
			testItems(),
			"pix",
			false, 30.0, "dinheiro",
			"",
		)
		require.NoError(t, err)
		assert.Zero(t, r.AdvanceAmount)
		assert.Empty(t, r.AdvancePaymentMethod)
	})

	t.Run("entrega antes do pedido é rejeitada", func(t *testing.T) {
		date := time.Now()
		_, err := NewReservation(
			"branch-1", "Maria Silva", "", "", "",
			date, date.AddDate(0, 0, -1),
			testItems(),
			"pix",
			false, 0, "",
			"",
		)
		assert.ErrorIs(t, err, ErrDeliveryBeforeOrderDate)
	})

	t.Run("sem itens é rejeitada", func(t *testing.T) {
		date := time.Now()
		_, err := NewReservation(
			"branch-1", "Maria Silva", "", "", "",
			date, date, nil, "pix", false, 0, "", "",
		)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("item com quantidade zero é rejeitado", func(t *testing.T) {
		date := time.Now()
		_, err := NewReservation(
			"branch-1", "Maria Silva", "", "", "",
			date, date,
			[]Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 0, Price: 10}},
			"pix", false, 0, "", "",
		)
		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("pendente pode concluir", func(t *testing.T) {
		r := newTestReservation(t, false, 0)
		require.NoError(t, r.ChangeStatus(StatusCompleted))
		assert.Equal(t, StatusCompleted, r.Status)
	})

	t.Run("pendente pode cancelar", func(t *testing.T) {
		r := newTestReservation(t, false, 0)
		require.NoError(t, r.ChangeStatus(StatusCancelled))
		assert.Equal(t, StatusCancelled, r.Status)
	})

	t.Run("estados terminais não mudam", func(t *testing.T) {
		r := newTestReservation(t, false, 0)
		require.NoError(t, r.ChangeStatus(StatusCompleted))

		err := r.ChangeStatus(StatusCancelled)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("pendente não volta a pendente", func(t *testing.T) {
		r := newTestReservation(t, false, 0)
		assert.ErrorIs(t, r.ChangeStatus(StatusPending), ErrInvalidStatusTransition)
	})
}

func TestLegacyProjection(t *testing.T) {
	t.Run("espelha o primeiro item e soma as quantidades", func(t *testing.T) {
		r := newTestReservation(t, false, 0)
		legacy := r.LegacyProjection()

		assert.Equal(t, "p1", legacy.ProductID)
		assert.Equal(t, "Bolo de chocolate", legacy.ProductName)
		assert.Equal(t, 12, legacy.Quantity)
		assert.Equal(t, 45.0, legacy.Price)
	})

	t.Run("sem itens retorna projeção vazia", func(t *testing.T) {
		r := &Reservation{}
		assert.Equal(t, LegacyFields{}, r.LegacyProjection())
	})
}

func TestValidateAdvance(t *testing.T) {
	assert.NoError(t, ValidateAdvance(100, false, 500))
	assert.NoError(t, ValidateAdvance(100, true, 0))
	assert.NoError(t, ValidateAdvance(100, true, 100))
	assert.ErrorIs(t, ValidateAdvance(100, true, 100.01), ErrInvalidAdvanceAmount)
	assert.ErrorIs(t, ValidateAdvance(100, true, -0.01), ErrInvalidAdvanceAmount)
}
