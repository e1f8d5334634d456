package branch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID         = errors.New("id não pode ser vazio")
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrInvalidBranchID = errors.New("ID de filial inválido")
	ErrBranchNotActive = errors.New("filial não está ativa")
)

// Status representa o estado da filial
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Branch representa uma filial da confeitaria
type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Manager   string    `json:"manager"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBranch cria uma nova filial
func NewBranch(name, address, phone, email, manager string) (*Branch, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Branch{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   address,
		Phone:     phone,
		Email:     email,
		Manager:   manager,
		Status:    StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// IsActive verifica se a filial está ativa
func (b *Branch) IsActive() bool {
	return b.Status == StatusActive
}

// Activate ativa a filial
func (b *Branch) Activate() {
	b.Status = StatusActive
	b.UpdatedAt = time.Now()
}

// Deactivate desativa a filial
func (b *Branch) Deactivate() {
	b.Status = StatusInactive
	b.UpdatedAt = time.Now()
}

// Update atualiza os dados da filial
func (b *Branch) Update(name, address, phone, email, manager string) error {
	if name == "" {
		return ErrEmptyName
	}

	b.Name = name
	b.Address = address
	b.Phone = phone
	b.Email = email
	b.Manager = manager
	b.UpdatedAt = time.Now()
	return nil
}
