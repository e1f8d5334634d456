package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBranchID = errors.New("ID da filial não pode ser vazio")
	ErrNoItems       = errors.New("venda precisa de ao menos um item")
	ErrInvalidItem   = errors.New("item da venda com quantidade ou preço inválido")
)

// Status representa o estado da venda. O fluxo de caixa padrão só produz
// vendas concluídas; os demais status existem no esquema para uso futuro.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Item representa um item vendido, com totais por linha
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"cost_price"`
	Size        string  `json:"size,omitempty"`
	Total       float64 `json:"total"`
	TotalCost   float64 `json:"total_cost"`
}

// Sale representa uma venda finalizada e paga
type Sale struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	CustomerID    string    `json:"customer_id,omitempty"`
	Items         []Item    `json:"items"`
	Total         float64   `json:"total"`
	TotalCost     float64   `json:"total_cost"`
	Profit        float64   `json:"profit"`
	PaymentMethod string    `json:"payment_method"`
	Status        Status    `json:"status"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSale cria uma nova venda concluída, derivando os totais por linha,
// o custo total e o lucro a partir dos itens.
func NewSale(branchID, customerID string, items []Item, paymentMethod string) (*Sale, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := 0.0
	totalCost := 0.0
	for idx := range items {
		item := &items[idx]
		if item.Quantity <= 0 || item.Price < 0 || item.CostPrice < 0 {
			return nil, ErrInvalidItem
		}
		item.Total = float64(item.Quantity) * item.Price
		item.TotalCost = float64(item.Quantity) * item.CostPrice
		total += item.Total
		totalCost += item.TotalCost
	}

	now := time.Now()
	return &Sale{
		ID:            uuid.New().String(),
		BranchID:      branchID,
		CustomerID:    customerID,
		Items:         items,
		Total:         total,
		TotalCost:     totalCost,
		Profit:        total - totalCost,
		PaymentMethod: paymentMethod,
		Status:        StatusCompleted,
		Date:          now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// TotalQuantity soma as quantidades de todos os itens
func (s *Sale) TotalQuantity() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}
