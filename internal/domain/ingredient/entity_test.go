package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngredient(t *testing.T, quantity, minQuantity float64) *Ingredient {
	t.Helper()
	i, err := NewIngredient("branch-1", "Farinha de trigo", quantity, minQuantity, "kg", 4.5)
	require.NoError(t, err)
	return i
}

func TestApplyAdjustment(t *testing.T) {
	t.Run("entrada aumenta o saldo e gera registro de entrada", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)

		entry, err := i.ApplyAdjustment(4, "compra semanal")
		require.NoError(t, err)

		assert.Equal(t, 14.0, i.Quantity)
		assert.Equal(t, MovementIn, entry.Type)
		assert.Equal(t, 4.0, entry.Quantity)
		assert.Equal(t, "compra semanal", entry.Reason)
		assert.Equal(t, i.ID, entry.IngredientID)
	})

	t.Run("saída reduz o saldo e registra quantidade positiva", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)

		entry, err := i.ApplyAdjustment(-3, "produção de bolos")
		require.NoError(t, err)

		assert.Equal(t, 7.0, i.Quantity)
		assert.Equal(t, MovementOut, entry.Type)
		assert.Equal(t, 3.0, entry.Quantity)
	})

	t.Run("saída até zero é permitida", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)

		_, err := i.ApplyAdjustment(-10, "inventário")
		require.NoError(t, err)
		assert.Zero(t, i.Quantity)
	})

	t.Run("saldo negativo é rejeitado sem alterar o ingrediente", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)

		_, err := i.ApplyAdjustment(-10.5, "erro de digitação")
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 10.0, i.Quantity)
	})

	t.Run("ajuste zero é rejeitado", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)

		_, err := i.ApplyAdjustment(0, "")
		assert.ErrorIs(t, err, ErrZeroDelta)
	})
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		min      float64
		want     StockStatus
	}{
		{"abaixo do mínimo é crítico", 4, 5, StockCritical},
		{"no mínimo é baixo", 5, 5, StockLow},
		{"abaixo de 1,5x o mínimo é baixo", 7.4, 5, StockLow},
		{"em 1,5x o mínimo é normal", 7.5, 5, StockNormal},
		{"bem acima do mínimo é normal", 20, 5, StockNormal},
		{"mínimo zero nunca é crítico", 0, 0, StockNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := newTestIngredient(t, tt.quantity, tt.min)
			assert.Equal(t, tt.want, i.Status())
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Run("atualiza cadastro sem mexer na quantidade", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)

		require.NoError(t, i.Update("Farinha integral", 8, "kg", 6.0))
		assert.Equal(t, "Farinha integral", i.Name)
		assert.Equal(t, 8.0, i.MinQuantity)
		assert.Equal(t, 10.0, i.Quantity)
	})

	t.Run("rejeita nome vazio", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)
		assert.ErrorIs(t, i.Update("", 5, "kg", 4.5), ErrEmptyName)
	})

	t.Run("rejeita mínimo negativo", func(t *testing.T) {
		i := newTestIngredient(t, 10, 5)
		assert.ErrorIs(t, i.Update("Farinha", -1, "kg", 4.5), ErrNegativeQuantity)
	})
}

func TestNewIngredient(t *testing.T) {
	t.Run("rejeita quantidade inicial negativa", func(t *testing.T) {
		_, err := NewIngredient("branch-1", "Açúcar", -1, 0, "kg", 3.0)
		assert.ErrorIs(t, err, ErrNegativeQuantity)
	})

	t.Run("rejeita filial vazia", func(t *testing.T) {
		_, err := NewIngredient("", "Açúcar", 1, 0, "kg", 3.0)
		assert.ErrorIs(t, err, ErrEmptyBranchID)
	})
}
