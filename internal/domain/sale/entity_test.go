package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	items := []Item{
		{ProductID: "p1", ProductName: "Torta de limão", Quantity: 2, Price: 30.0, CostPrice: 12.0, Size: "P"},
		{ProductID: "p2", ProductName: "Café", Quantity: 3, Price: 6.0, CostPrice: 1.5},
	}

	t.Run("deriva totais por linha, custo e lucro", func(t *testing.T) {
		s, err := NewSale("branch-1", "cust-1", items, "credit")
		require.NoError(t, err)

		assert.Equal(t, 60.0, s.Items[0].Total)
		assert.Equal(t, 24.0, s.Items[0].TotalCost)
		assert.Equal(t, 18.0, s.Items[1].Total)
		assert.Equal(t, 4.5, s.Items[1].TotalCost)

		assert.Equal(t, 78.0, s.Total)
		assert.Equal(t, 28.5, s.TotalCost)
		assert.InDelta(t, 49.5, s.Profit, 1e-9)

		assert.Equal(t, StatusCompleted, s.Status)
		assert.Equal(t, 5, s.TotalQuantity())
	})

	t.Run("venda sem cliente é permitida", func(t *testing.T) {
		s, err := NewSale("branch-1", "", items, "cash")
		require.NoError(t, err)
		assert.Empty(t, s.CustomerID)
	})

	t.Run("rejeita venda sem itens", func(t *testing.T) {
		_, err := NewSale("branch-1", "", nil, "cash")
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("rejeita filial vazia", func(t *testing.T) {
		_, err := NewSale("", "", items, "cash")
		assert.ErrorIs(t, err, ErrEmptyBranchID)
	})

	t.Run("rejeita item com quantidade inválida", func(t *testing.T) {
		bad := []Item{{ProductID: "p1", Quantity: 0, Price: 10}}
		_, err := NewSale("branch-1", "", bad, "cash")
		assert.ErrorIs(t, err, ErrInvalidItem)
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		bad := []Item{{ProductID: "p1", Quantity: 1, Price: -1}}
		_, err := NewSale("branch-1", "", bad, "cash")
		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}
