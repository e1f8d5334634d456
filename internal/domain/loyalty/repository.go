package loyalty

import (
	"context"
)

// Repository define as operações de persistência do programa de fidelidade
type Repository interface {
	// CreateLevel persiste um novo nível. A pontuação mínima é única por
	// filial; violações retornam ErrDuplicateMinPoints.
	CreateLevel(ctx context.Context, level *Level) error

	// FindLevelByID busca um nível pelo ID dentro da filial
	FindLevelByID(ctx context.Context, id, branchID string) (*Level, error)

	// ListLevels retorna os níveis da filial ordenados por pontuação mínima
	ListLevels(ctx context.Context, branchID string) ([]*Level, error)

	// CountLevels retorna o número de níveis cadastrados na filial
	CountLevels(ctx context.Context, branchID string) (int, error)

	// CreateReward persiste uma nova recompensa
	CreateReward(ctx context.Context, reward *Reward) error

	// FindRewardByID busca uma recompensa pelo ID dentro da filial
	FindRewardByID(ctx context.Context, id, branchID string) (*Reward, error)

	// UpdateReward atualiza uma recompensa existente
	UpdateReward(ctx context.Context, reward *Reward) error

	// ListRewards retorna as recompensas da filial
	ListRewards(ctx context.Context, branchID string) ([]*Reward, error)

	// CountRewards retorna o número de recompensas cadastradas na filial
	CountRewards(ctx context.Context, branchID string) (int, error)

	// RedeemReward grava o resgate e deduz os pontos do cliente na mesma
	// transação. Retorna ErrInsufficientPoints sem alterar nada quando o
	// saldo do cliente é menor que o custo da recompensa.
	RedeemReward(ctx context.Context, redemption *Redemption) error

	// ListRedemptions retorna os resgates de um cliente, do mais recente
	// para o mais antigo
	ListRedemptions(ctx context.Context, customerID, branchID string) ([]*Redemption, error)
}
