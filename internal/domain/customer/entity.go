package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID  = errors.New("ID da filial não pode ser vazio")
	ErrNegativePoints = errors.New("pontos de fidelidade não podem ficar negativos")
)

// Status representa o estado do cliente
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Customer representa um cliente da filial
type Customer struct {
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
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(branchID, name, email, phone, address, notes string) (*Customer, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Notes:     notes,
		Status:    StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// AddPoints adiciona pontos de fidelidade ao cliente
func (c *Customer) AddPoints(points int) {
	if points <= 0 {
		return
	}
	c.LoyaltyPoints += points
	c.UpdatedAt = time.Now()
}

// SpendPoints deduz pontos de fidelidade do cliente
func (c *Customer) SpendPoints(points int) error {
	if c.LoyaltyPoints < points {
		return ErrNegativePoints
	}
	c.LoyaltyPoints -= points
	c.UpdatedAt = time.Now()
	return nil
}

// RegisterOrder contabiliza um novo pedido concluído
func (c *Customer) RegisterOrder() {
	c.TotalOrders++
	c.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do cliente
func (c *Customer) Update(name, email, phone, address, notes string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.Notes = notes
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate marca o cliente como inativo (soft delete)
func (c *Customer) Deactivate() {
	c.Status = StatusInactive
	c.UpdatedAt = time.Now()
}
