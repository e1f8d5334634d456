package sales

import (
	"context"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
	"github.com/dscosta/pos-confeitaria/internal/domain/product"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/pkg/logger"
)

// ItemInput é um item do caixa: produto, quantidade e tamanho opcional
type ItemInput struct {
	ProductID string
	Quantity  int
	Size      string
}

// Service registra vendas e seus efeitos em cascata. A venda, o desconto
// de estoque e a atualização do cliente são aplicados em uma única
// transação: ou a venda entra com todos os efeitos, ou nada muda.
type Service struct {
	saleRepo     sale.Repository
	productRepo  product.Repository
	customerRepo customer.Repository
	loyaltyRepo  loyalty.Repository
	logger       logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(
	saleRepo sale.Repository,
	productRepo product.Repository,
	customerRepo customer.Repository,
	loyaltyRepo loyalty.Repository,
	logger logger.Logger,
) *Service {
	return &Service{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		loyaltyRepo:  loyaltyRepo,
		logger:       logger,
	}
}

// RecordSale finaliza uma venda do caixa. Os preços unitários vêm do
// cadastro do produto (do tamanho selecionado quando houver), o custo do
// preço de custo cadastrado. customerID vazio registra venda sem cliente,
// sem pontuação.
func (s *Service) RecordSale(ctx context.Context, branchID string, inputs []ItemInput, paymentMethod, customerID string) (*sale.Sale, error) {
	if len(inputs) == 0 {
		return nil, sale.ErrNoItems
	}

	items := make([]sale.Item, 0, len(inputs))
	adjustments := make([]sale.StockAdjustment, 0, len(inputs))

	for _, input := range inputs {
		p, err := s.productRepo.FindByID(ctx, input.ProductID, branchID)
		if err != nil {
			return nil, fmt.Errorf("falha ao buscar produto %s: %w", input.ProductID, err)
		}

		unitPrice, err := p.UnitPrice(input.Size)
		if err != nil {
			return nil, err
		}

		items = append(items, sale.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    input.Quantity,
			Price:       unitPrice,
			CostPrice:   p.CostPrice,
			Size:        input.Size,
		})
		adjustments = append(adjustments, sale.StockAdjustment{
			ProductID: p.ID,
			Quantity:  input.Quantity,
		})
	}

	newSale, err := sale.NewSale(branchID, customerID, items, paymentMethod)
	if err != nil {
		return nil, err
	}

	effects, err := s.customerEffects(ctx, branchID, customerID, newSale.Total)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.CreateWithEffects(ctx, newSale, adjustments, effects); err != nil {
		return nil, fmt.Errorf("falha ao gravar venda: %w", err)
	}

	s.logger.Info("venda registrada",
		"sale_id", newSale.ID, "branch_id", branchID, "total", newSale.Total, "items", len(items))

	return newSale, nil
}

// customerEffects calcula os efeitos da venda sobre o cliente: pontos pelo
// valor do pedido e o nível resultante do novo saldo.
func (s *Service) customerEffects(ctx context.Context, branchID, customerID string, orderTotal float64) (*sale.CustomerEffects, error) {
	if customerID == "" {
		return nil, nil
	}

	c, err := s.customerRepo.FindByID(ctx, customerID, branchID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	points := loyalty.PointsForOrder(orderTotal)
	newBalance := c.LoyaltyPoints + points

	effects := &sale.CustomerEffects{
		CustomerID:    customerID,
		PointsAwarded: points,
		NewLevelID:    c.LoyaltyLevelID,
	}

	levels, err := s.loyaltyRepo.ListLevels(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar níveis: %w", err)
	}

	if level := loyalty.SelectLevel(levels, newBalance); level != nil {
		effects.NewLevelID = level.ID
	}

	return effects, nil
}
