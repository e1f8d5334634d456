package report

import (
	"testing"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(t *testing.T, day time.Time, method string, items []sale.Item) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale("branch-1", "", items, method)
	require.NoError(t, err)
	s.Date = day
	return s
}

func TestAggregateSales(t *testing.T) {
	loc := time.UTC
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 5, 0, 0, 0, 0, loc)

	sales := []*sale.Sale{
		saleOn(t, time.Date(2026, 3, 1, 9, 0, 0, 0, loc), "cash",
			[]sale.Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 1, Price: 50}}),
		saleOn(t, time.Date(2026, 3, 1, 16, 0, 0, 0, loc), "pix",
			[]sale.Item{{ProductID: "p2", ProductName: "Torta", Quantity: 1, Price: 30}}),
		saleOn(t, time.Date(2026, 3, 4, 11, 0, 0, 0, loc), "credit",
			[]sale.Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 2, Price: 50}}),
	}

	buckets, err := AggregateSales(sales, from, to, GranularityDaily)
	require.NoError(t, err)
	require.Len(t, buckets, 5)

	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 80.0, buckets[0].Total)

	// Dias sem vendas permanecem no resultado com valores zerados
	assert.Equal(t, 0, buckets[1].Count)
	assert.Zero(t, buckets[1].Total)

	assert.Equal(t, 1, buckets[3].Count)
	assert.Equal(t, 100.0, buckets[3].Total)
}

func TestPaymentMethodBreakdown(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)

	sales := []*sale.Sale{
		saleOn(t, day, "pix", []sale.Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 1, Price: 60}}),
		saleOn(t, day, "cash", []sale.Item{{ProductID: "p1", ProductName: "Bolo", Quantity: 1, Price: 30}}),
		saleOn(t, day, "pix", []sale.Item{{ProductID: "p2", ProductName: "Torta", Quantity: 1, Price: 10}}),
	}

	shares := PaymentMethodBreakdown(sales)
	require.Len(t, shares, 2)

	assert.Equal(t, "pix", shares[0].Method)
	assert.Equal(t, 70.0, shares[0].Total)
	assert.InDelta(t, 70.0, shares[0].Percentage, 1e-9)

	assert.Equal(t, "cash", shares[1].Method)
	assert.InDelta(t, 30.0, shares[1].Percentage, 1e-9)
}

func TestPaymentMethodBreakdownEmpty(t *testing.T) {
	assert.Empty(t, PaymentMethodBreakdown(nil))
}

func TestBestDays(t *testing.T) {
	buckets := []SalesBucket{
		{Bucket: Bucket{Label: "01/03"}, Count: 1, Total: 50},
		{Bucket: Bucket{Label: "02/03"}, Count: 3, Total: 200},
		{Bucket: Bucket{Label: "03/03"}, Count: 2, Total: 120},
	}

	best := BestDays(buckets, 2)
	require.Len(t, best, 2)
	assert.Equal(t, "02/03", best[0].Label)
	assert.Equal(t, "03/03", best[1].Label)

	// N maior que a lista retorna todos
	assert.Len(t, BestDays(buckets, 10), 3)
}

func TestBestSellingProducts(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)

	sales := []*sale.Sale{
		saleOn(t, day, "pix", []sale.Item{
			{ProductID: "p1", ProductName: "Bolo", Quantity: 2, Price: 50},
			{ProductID: "p2", ProductName: "Brigadeiro", Quantity: 10, Price: 3},
		}),
		saleOn(t, day, "cash", []sale.Item{
			{ProductID: "p2", ProductName: "Brigadeiro", Quantity: 5, Price: 3},
		}),
	}

	ranking := BestSellingProducts(sales, 10)
	require.Len(t, ranking, 2)

	assert.Equal(t, "p2", ranking[0].ProductID)
	assert.Equal(t, 15, ranking[0].QuantitySold)
	assert.Equal(t, 45.0, ranking[0].TotalRevenue)

	assert.Equal(t, "p1", ranking[1].ProductID)
	assert.Equal(t, 100.0, ranking[1].TotalRevenue)

	top1 := BestSellingProducts(sales, 1)
	require.Len(t, top1, 1)
	assert.Equal(t, "p2", top1[0].ProductID)
}
