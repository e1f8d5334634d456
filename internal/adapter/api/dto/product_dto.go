package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/product"
)

// ProductSizeRequest representa um tamanho do produto com preço próprio
type ProductSizeRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// ProductRequest representa a estrutura de dados para criação/atualização de produto
type ProductRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Price       float64              `json:"price" binding:"gte=0"`
	CostPrice   float64              `json:"cost_price" binding:"gte=0"`
	Stock       int                  `json:"stock" binding:"gte=0"`
	Category    string               `json:"category"`
	Sizes       []ProductSizeRequest `json:"sizes" binding:"omitempty,dive"`
}

// ProductStockRequest representa o ajuste direto de estoque
type ProductStockRequest struct {
	Stock int `json:"stock" binding:"gte=0"`
}

// ProductSizeResponse representa um tamanho na resposta
type ProductSizeResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductResponse representa a estrutura de resposta para produto
type ProductResponse struct {
	ID          string                `json:"id"`
	BranchID    string                `json:"branch_id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	CostPrice   float64               `json:"cost_price"`
	Stock       int                   `json:"stock"`
	Category    string                `json:"category"`
	Sizes       []ProductSizeResponse `json:"sizes"`
	Active      bool                  `json:"active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ToProductSizes converte os tamanhos da requisição para o domínio,
// preservando a ordem enviada
func ToProductSizes(sizes []ProductSizeRequest) []product.ProductSize {
	result := make([]product.ProductSize, len(sizes))
	for i, s := range sizes {
		result[i] = product.ProductSize{Name: s.Name, Price: s.Price}
	}
	return result
}

// ToProductResponse converte um modelo de domínio em uma resposta DTO
func ToProductResponse(p *product.Product) ProductResponse {
	sizes := make([]ProductSizeResponse, len(p.Sizes))
	for i, s := range p.Sizes {
		sizes[i] = ProductSizeResponse{Name: s.Name, Price: s.Price}
	}

	return ProductResponse{
		ID:          p.ID,
		BranchID:    p.BranchID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Stock:       p.Stock,
		Category:    p.Category,
		Sizes:       sizes,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos
func ToProductListResponse(products []*product.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ToProductResponse(p)
	}
	return response
}
