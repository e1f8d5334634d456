package dto

import (
	"github.com/dscosta/pos-confeitaria/internal/domain/report"
)

// SalesReportResponse agrega o relatório de vendas de um período
type SalesReportResponse struct {
	Buckets        []report.SalesBucket        `json:"buckets"`
	PaymentMethods []report.PaymentMethodShare `json:"payment_methods"`
	BestDays       []report.SalesBucket        `json:"best_days"`
	BestSellers    []report.ProductSales       `json:"best_sellers"`
	TotalRevenue   float64                     `json:"total_revenue"`
	TotalSales     int                         `json:"total_sales"`
}

// InventoryReportResponse agrega o relatório de estoque
type InventoryReportResponse struct {
	LowStock  []report.StockEntry `json:"low_stock"`
	HighStock []report.StockEntry `json:"high_stock"`
}

// ReservationsReportResponse agrega o relatório de encomendas
type ReservationsReportResponse struct {
	ByStatus    []report.StatusSummary   `json:"by_status"`
	ByWeekday   []report.WeekdayCount    `json:"by_weekday"`
	TopProducts []report.ReservedProduct `json:"top_products"`
}
