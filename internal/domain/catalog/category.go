package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID = errors.New("ID da filial não pode ser vazio")
)

// Category representa uma categoria de produtos da filial
type Category struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(branchID, name string) (*Category, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Category{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Update atualiza o nome da categoria
func (c *Category) Update(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}
