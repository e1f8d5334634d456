package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
)

// SaleItemRequest representa um item do carrinho na criação da venda.
// Preço e custo vêm do cadastro do produto no servidor, não do cliente.
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Size      string `json:"size"`
}

// SaleRequest representa a criação de uma venda
type SaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
}

// SaleItemResponse representa um item vendido na resposta
type SaleItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
	Total       float64 `json:"total"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	BranchID      string             `json:"branch_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	Total         float64            `json:"total"`
	TotalCost     float64            `json:"total_cost"`
	Profit        float64            `json:"profit"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Date          time.Time          `json:"date"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToSaleResponse converte um modelo de domínio em uma resposta DTO
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Size:        item.Size,
			Total:       item.Total,
		}
	}

	return SaleResponse{
		ID:            s.ID,
		BranchID:      s.BranchID,
		CustomerID:    s.CustomerID,
		Items:         items,
		Total:         s.Total,
		TotalCost:     s.TotalCost,
		Profit:        s.Profit,
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		Date:          s.Date,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas
func ToSaleListResponse(sales []*sale.Sale) []SaleResponse {
	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = ToSaleResponse(s)
	}
	return response
}
