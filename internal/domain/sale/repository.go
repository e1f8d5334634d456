package sale

import (
	"context"
	"time"
)

// StockAdjustment descreve o desconto de estoque de um produto vendido
type StockAdjustment struct {
	ProductID string
	Quantity  int
}

// CustomerEffects descreve as mudanças no cliente causadas pela venda:
// pontos ganhos e, quando o saldo cruza um limiar, o novo nível.
type CustomerEffects struct {
	CustomerID    string
	PointsAwarded int
	NewLevelID    string
}

// Repository define as operações de persistência para vendas
type Repository interface {
	// CreateWithEffects grava a venda e aplica seus efeitos em cascata na
	// mesma transação: desconto de estoque (com piso em zero) e, quando há
	// cliente, contagem de pedidos, pontos e nível.
	CreateWithEffects(ctx context.Context, sale *Sale, adjustments []StockAdjustment, effects *CustomerEffects) error

	// FindByID busca uma venda pelo ID dentro da filial
	FindByID(ctx context.Context, id, branchID string) (*Sale, error)

	// ListByBranch retorna as vendas da filial, mais recentes primeiro
	ListByBranch(ctx context.Context, branchID string) ([]*Sale, error)

	// ListByDateRange retorna as vendas da filial no período
	ListByDateRange(ctx context.Context, branchID string, from, to time.Time) ([]*Sale, error)

	// ListByCustomer retorna as vendas de um cliente, mais recentes
	// primeiro. É a fonte única do histórico de pedidos do cliente.
	ListByCustomer(ctx context.Context, customerID, branchID string) ([]*Sale, error)

	// CountByCustomer retorna o número de vendas de um cliente
	CountByCustomer(ctx context.Context, customerID, branchID string) (int, error)
}
