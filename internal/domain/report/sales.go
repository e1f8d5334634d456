package report

import (
	"sort"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
)

// SalesBucket é o resumo de vendas de um balde de tempo
type SalesBucket struct {
	Bucket
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// PaymentMethodShare é a fatia de um método de pagamento no total vendido
type PaymentMethodShare struct {
	Method     string  `json:"method"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ProductSales é o total vendido de um produto no período
type ProductSales struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// AggregateSales distribui as vendas nos baldes do período. Baldes sem
// vendas permanecem com contagem e total zero.
func AggregateSales(sales []*sale.Sale, from, to time.Time, granularity Granularity) ([]SalesBucket, error) {
	buckets, err := MakeBuckets(from, to, granularity)
	if err != nil {
		return nil, err
	}

	result := make([]SalesBucket, len(buckets))
	for idx, b := range buckets {
		result[idx] = SalesBucket{Bucket: b}
	}

	for _, s := range sales {
		idx := FindBucket(buckets, s.Date)
		if idx < 0 {
			continue
		}
		result[idx].Count++
		result[idx].Total += s.Total
	}

	return result, nil
}

// PaymentMethodBreakdown calcula a porcentagem do valor total vendido por
// método de pagamento, em ordem decrescente de valor.
func PaymentMethodBreakdown(sales []*sale.Sale) []PaymentMethodShare {
	totals := make(map[string]float64)
	grandTotal := 0.0
	for _, s := range sales {
		totals[s.PaymentMethod] += s.Total
		grandTotal += s.Total
	}

	shares := make([]PaymentMethodShare, 0, len(totals))
	for method, total := range totals {
		share := PaymentMethodShare{Method: method, Total: total}
		if grandTotal > 0 {
			share.Percentage = total / grandTotal * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Total != shares[j].Total {
			return shares[i].Total > shares[j].Total
		}
		return shares[i].Method < shares[j].Method
	})

	return shares
}

// BestDays retorna os N baldes de maior valor vendido, em ordem decrescente
func BestDays(buckets []SalesBucket, n int) []SalesBucket {
	sorted := make([]SalesBucket, len(buckets))
	copy(sorted, buckets)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// BestSellingProducts soma as quantidades vendidas por produto em todas as
// vendas do período e retorna os N mais vendidos.
func BestSellingProducts(sales []*sale.Sale, n int) []ProductSales {
	byProduct := make(map[string]*ProductSales)
	for _, s := range sales {
		for _, item := range s.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ProductSales{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = entry
			}
			entry.QuantitySold += item.Quantity
			entry.TotalRevenue += item.Total
		}
	}

	ranking := make([]ProductSales, 0, len(byProduct))
	for _, entry := range byProduct {
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].QuantitySold != ranking[j].QuantitySold {
			return ranking[i].QuantitySold > ranking[j].QuantitySold
		}
		return ranking[i].ProductName < ranking[j].ProductName
	})

	if n > len(ranking) {
		n = len(ranking)
	}
	return ranking[:n]
}
