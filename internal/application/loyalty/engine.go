package loyalty

import (
	"context"
	"fmt"

	"github.com/dscosta/pos-confeitaria/internal/domain/customer"
	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
	"github.com/dscosta/pos-confeitaria/pkg/logger"
)

// Engine coordena o programa de fidelidade: pontuação por pedidos,
// reclassificação de nível e resgate de recompensas.
type Engine struct {
	loyaltyRepo  loyalty.Repository
	customerRepo customer.Repository
	logger       logger.Logger
}

// NewEngine cria uma nova instância de Engine
func NewEngine(loyaltyRepo loyalty.Repository, customerRepo customer.Repository, logger logger.Logger) *Engine {
	return &Engine{
		loyaltyRepo:  loyaltyRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// AwardPointsForOrder credita os pontos de um pedido ao cliente e
// reclassifica o nível. Pedidos abaixo de dez unidades monetárias não
// pontuam e não são erro.
func (e *Engine) AwardPointsForOrder(ctx context.Context, customerID, branchID string, orderTotal float64) (*customer.Customer, error) {
	c, err := e.customerRepo.FindByID(ctx, customerID, branchID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	points := loyalty.PointsForOrder(orderTotal)
	if points == 0 {
		return c, nil
	}

	c.AddPoints(points)

	if err := e.recomputeTier(ctx, c); err != nil {
		return nil, err
	}

	if err := e.customerRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("falha ao atualizar cliente: %w", err)
	}

	e.logger.Info("pontos de fidelidade creditados",
		"customer_id", customerID, "points", points, "balance", c.LoyaltyPoints)

	return c, nil
}

// recomputeTier escolhe o nível com maior pontuação mínima alcançada pelo
// saldo do cliente. Sem nível qualificado, o nível atual é mantido.
func (e *Engine) recomputeTier(ctx context.Context, c *customer.Customer) error {
	levels, err := e.loyaltyRepo.ListLevels(ctx, c.BranchID)
	if err != nil {
		return fmt.Errorf("falha ao listar níveis: %w", err)
	}

	if level := loyalty.SelectLevel(levels, c.LoyaltyPoints); level != nil {
		c.LoyaltyLevelID = level.ID
	}
	return nil
}

// Redeem troca pontos do cliente por uma recompensa. Falha com
// ErrRewardInactive ou ErrInsufficientPoints sem alterar nada. O nível do
// cliente não é reclassificado na queda de saldo: o nível reflete pontos
// acumulados e só muda em novos ganhos.
func (e *Engine) Redeem(ctx context.Context, customerID, rewardID, branchID string) (*loyalty.Redemption, error) {
	reward, err := e.loyaltyRepo.FindRewardByID(ctx, rewardID, branchID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar recompensa: %w", err)
	}

	if !reward.Active {
		return nil, loyalty.ErrRewardInactive
	}

	c, err := e.customerRepo.FindByID(ctx, customerID, branchID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar cliente: %w", err)
	}

	if c.LoyaltyPoints < reward.PointsRequired {
		return nil, loyalty.ErrInsufficientPoints
	}

	redemption := loyalty.NewRedemption(branchID, customerID, reward)
	if err := e.loyaltyRepo.RedeemReward(ctx, redemption); err != nil {
		return nil, fmt.Errorf("falha ao registrar resgate: %w", err)
	}

	e.logger.Info("recompensa resgatada",
		"customer_id", customerID, "reward", reward.Name, "points", reward.PointsRequired)

	return redemption, nil
}

// EnsureDefaults semeia os níveis e recompensas canônicos em filiais sem
// programa configurado. Idempotente: só roda quando a coleção
// correspondente está vazia.
func (e *Engine) EnsureDefaults(ctx context.Context, branchID string) error {
	levelCount, err := e.loyaltyRepo.CountLevels(ctx, branchID)
	if err != nil {
		return fmt.Errorf("falha ao contar níveis: %w", err)
	}

	if levelCount == 0 {
		for _, level := range loyalty.DefaultLevels(branchID) {
			if err := e.loyaltyRepo.CreateLevel(ctx, level); err != nil {
				return fmt.Errorf("falha ao semear nível %s: %w", level.Name, err)
			}
		}
		e.logger.Info("níveis de fidelidade padrão semeados", "branch_id", branchID)
	}

	rewardCount, err := e.loyaltyRepo.CountRewards(ctx, branchID)
	if err != nil {
		return fmt.Errorf("falha ao contar recompensas: %w", err)
	}

	if rewardCount == 0 {
		for _, reward := range loyalty.DefaultRewards(branchID) {
			if err := e.loyaltyRepo.CreateReward(ctx, reward); err != nil {
				return fmt.Errorf("falha ao semear recompensa %s: %w", reward.Name, err)
			}
		}
		e.logger.Info("recompensas padrão semeadas", "branch_id", branchID)
	}

	return nil
}
