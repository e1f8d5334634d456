package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
)

// CustomerRequest representa a estrutura de dados para criação/atualização de cliente
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CustomerResponse representa a estrutura de resposta para cliente
type CustomerResponse struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Notes          string    `json:"notes"`
	LoyaltyPoints  int       `json:"loyalty_points"`
	LoyaltyLevelID string    `json:"loyalty_level_id,omitempty"`
	TotalOrders    int       `json:"total_orders"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustomerOrderResponse representa um pedido no histórico do cliente,
// derivado das vendas registradas
type CustomerOrderResponse struct {
	SaleID        string    `json:"sale_id"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	Date          time.Time `json:"date"`
}

// ToCustomerResponse converte um modelo de domínio em uma resposta DTO
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		BranchID:       c.BranchID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Notes:          c.Notes,
		LoyaltyPoints:  c.LoyaltyPoints,
		LoyaltyLevelID: c.LoyaltyLevelID,
		TotalOrders:    c.TotalOrders,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes
func ToCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = ToCustomerResponse(c)
	}
	return response
}

// ToCustomerOrderHistory projeta as vendas do cliente no formato de
// histórico de pedidos
func ToCustomerOrderHistory(sales []*sale.Sale) []CustomerOrderResponse {
	response := make([]CustomerOrderResponse, len(sales))
	for i, s := range sales {
		response[i] = CustomerOrderResponse{
			SaleID:        s.ID,
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
			ItemCount:     s.TotalQuantity(),
			Date:          s.Date,
		}
	}
	return response
}
