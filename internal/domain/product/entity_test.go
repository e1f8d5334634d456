package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPrice(t *testing.T) {
	t.Run("sem tamanhos usa o preço base", func(t *testing.T) {
		p, err := NewProduct("branch-1", "Brigadeiro", "", 3.5, 1.0, 100, "doces", nil)
		require.NoError(t, err)

		price, err := p.UnitPrice("")
		require.NoError(t, err)
		assert.Equal(t, 3.5, price)
	})

	t.Run("com tamanhos o preço vem do tamanho selecionado", func(t *testing.T) {
		sizes := []ProductSize{
			{Name: "P", Price: 35.0},
			{Name: "M", Price: 55.0},
			{Name: "G", Price: 80.0},
		}
		p, err := NewProduct("branch-1", "Bolo de cenoura", "", 55.0, 20.0, 10, "bolos", sizes)
		require.NoError(t, err)

		price, err := p.UnitPrice("G")
		require.NoError(t, err)
		assert.Equal(t, 80.0, price)
	})

	t.Run("tamanho inexistente não cai no preço base", func(t *testing.T) {
		sizes := []ProductSize{{Name: "P", Price: 35.0}}
		p, err := NewProduct("branch-1", "Bolo de cenoura", "", 55.0, 20.0, 10, "bolos", sizes)
		require.NoError(t, err)

		_, err = p.UnitPrice("GG")
		assert.ErrorIs(t, err, ErrSizeNotFound)
	})

	t.Run("tamanho vazio em produto com tamanhos é rejeitado", func(t *testing.T) {
		sizes := []ProductSize{{Name: "P", Price: 35.0}}
		p, err := NewProduct("branch-1", "Bolo", "", 55.0, 20.0, 10, "bolos", sizes)
		require.NoError(t, err)

		_, err = p.UnitPrice("")
		assert.ErrorIs(t, err, ErrSizeNotFound)
	})
}

func TestDecrementStock(t *testing.T) {
	p, err := NewProduct("branch-1", "Brigadeiro", "", 3.5, 1.0, 5, "doces", nil)
	require.NoError(t, err)

	p.DecrementStock(3)
	assert.Equal(t, 2, p.Stock)

	// Vender mais do que há em estoque apenas zera, não fica negativo
	p.DecrementStock(10)
	assert.Equal(t, 0, p.Stock)
}

func TestNewProduct(t *testing.T) {
	t.Run("produto novo nasce ativo", func(t *testing.T) {
		p, err := NewProduct("branch-1", "Brigadeiro", "", 3.5, 1.0, 100, "doces", nil)
		require.NoError(t, err)
		assert.True(t, p.Active)
	})

	t.Run("rejeita preço negativo", func(t *testing.T) {
		_, err := NewProduct("branch-1", "Brigadeiro", "", -1, 1.0, 100, "doces", nil)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("rejeita estoque negativo", func(t *testing.T) {
		_, err := NewProduct("branch-1", "Brigadeiro", "", 3.5, 1.0, -1, "doces", nil)
		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}

func TestDeactivate(t *testing.T) {
	p, err := NewProduct("branch-1", "Brigadeiro", "", 3.5, 1.0, 100, "doces", nil)
	require.NoError(t, err)

	p.Deactivate()
	assert.False(t, p.Active)
}
