package report

import (
	"sort"

	"github.com/dscosta/pos-confeitaria/internal/domain/product"
)

// Limiares fixos das listas de estoque dos relatórios
const (
	lowStockThreshold  = 5
	highStockThreshold = 20
)

// StockEntry é um produto com seu nível de estoque
type StockEntry struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

// LowStockProducts retorna os N produtos de menor estoque entre os que têm
// menos de cinco unidades, em ordem crescente.
func LowStockProducts(products []*product.Product, n int) []StockEntry {
	entries := make([]StockEntry, 0)
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			entries = append(entries, StockEntry{ProductID: p.ID, ProductName: p.Name, Stock: p.Stock})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Stock != entries[j].Stock {
			return entries[i].Stock < entries[j].Stock
		}
		return entries[i].ProductName < entries[j].ProductName
	})

	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// HighStockProducts retorna os N produtos de maior estoque entre os que têm
// mais de vinte unidades, em ordem decrescente.
func HighStockProducts(products []*product.Product, n int) []StockEntry {
	entries := make([]StockEntry, 0)
	for _, p := range products {
		if p.Stock > highStockThreshold {
			entries = append(entries, StockEntry{ProductID: p.ID, ProductName: p.Name, Stock: p.Stock})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Stock != entries[j].Stock {
			return entries[i].Stock > entries[j].Stock
		}
		return entries[i].ProductName < entries[j].ProductName
	})

	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
