package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID    = errors.New("ID da filial não pode ser vazio")
	ErrNegativePrice    = errors.New("preço não pode ser negativo")
	ErrNegativeStock    = errors.New("estoque não pode ser negativo")
	ErrSizeNotFound     = errors.New("tamanho não encontrado no produto")
	ErrProductNotActive = errors.New("produto não está ativo")
)

// ProductSize representa um tamanho disponível do produto com preço próprio.
// A ordem da lista é preservada na persistência.
type ProductSize struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Product representa um produto do catálogo da filial
type Product struct {
	ID          string        `json:"id"`
	BranchID    string        `json:"branch_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	CostPrice   float64       `json:"cost_price"`
	Stock       int           `json:"stock"`
	Category    string        `json:"category"`
	Sizes       []ProductSize `json:"sizes"`
	Active      bool          `json:"active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(branchID, name, description string, price, costPrice float64, stock int, category string, sizes []ProductSize) (*Product, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 || costPrice < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		Name:        name,
		Description: description,
		Price:       price,
		CostPrice:   costPrice,
		Stock:       stock,
		Category:    category,
		Sizes:       sizes,
		Active:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// HasSizes informa se o produto possui tamanhos próprios
func (p *Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

// UnitPrice retorna o preço unitário do produto. Quando o produto possui
// tamanhos, o preço vem do tamanho selecionado e não do preço base.
func (p *Product) UnitPrice(sizeName string) (float64, error) {
	if !p.HasSizes() {
		return p.Price, nil
	}

	for _, s := range p.Sizes {
		if s.Name == sizeName {
			return s.Price, nil
		}
	}

	return 0, ErrSizeNotFound
}

// DecrementStock reduz o estoque pela quantidade vendida, com piso em zero
func (p *Product) DecrementStock(quantity int) {
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.UpdatedAt = time.Now()
}

// Update atualiza os dados do produto
func (p *Product) Update(name, description string, price, costPrice float64, stock int, category string, sizes []ProductSize) error {
	if name == "" {
		return ErrEmptyName
	}
	if price < 0 || costPrice < 0 {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.CostPrice = costPrice
	p.Stock = stock
	p.Category = category
	p.Sizes = sizes
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate marca o produto como inativo (soft delete)
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}
