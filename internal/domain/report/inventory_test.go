package report

import (
	"testing"

	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockProduct(t *testing.T, name string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct("branch-1", name, "", 10, 4, stock, "doces", nil)
	require.NoError(t, err)
	return p
}

func TestLowStockProducts(t *testing.T) {
	products := []*product.Product{
		stockProduct(t, "Bolo", 0),
		stockProduct(t, "Torta", 4),
		stockProduct(t, "Brigadeiro", 5),
		stockProduct(t, "Beijinho", 2),
	}

	entries := LowStockProducts(products, 10)
	require.Len(t, entries, 3)

	// Ordem crescente de estoque; cinco unidades já fica de fora
	assert.Equal(t, "Bolo", entries[0].ProductName)
	assert.Equal(t, "Beijinho", entries[1].ProductName)
	assert.Equal(t, "Torta", entries[2].ProductName)

	assert.Len(t, LowStockProducts(products, 2), 2)
}

func TestHighStockProducts(t *testing.T) {
	products := []*product.Product{
		stockProduct(t, "Bolo", 50),
		stockProduct(t, "Torta", 20),
		stockProduct(t, "Brigadeiro", 21),
	}

	entries := HighStockProducts(products, 10)
	require.Len(t, entries, 2)

	// Ordem decrescente; vinte unidades exatas fica de fora
	assert.Equal(t, "Bolo", entries[0].ProductName)
	assert.Equal(t, 50, entries[0].Stock)
	assert.Equal(t, "Brigadeiro", entries[1].ProductName)
}
