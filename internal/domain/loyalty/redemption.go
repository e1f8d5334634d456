package loyalty

import (
	"time"

	"github.com/google/uuid"
)

// Redemption é o registro imutável de uma troca de pontos por recompensa.
// Nunca é alterado nem removido depois de criado.
type Redemption struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	CustomerID     string    `json:"customer_id"`
	RewardID       string    `json:"reward_id"`
	RewardName     string    `json:"reward_name"`
	PointsRedeemed int       `json:"points_redeemed"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

// NewRedemption cria o registro de resgate de uma recompensa
func NewRedemption(branchID, customerID string, reward *Reward) *Redemption {
	return &Redemption{
		ID:             uuid.New().String(),
		BranchID:       branchID,
		CustomerID:     customerID,
		RewardID:       reward.ID,
		RewardName:     reward.Name,
		PointsRedeemed: reward.PointsRequired,
		RedeemedAt:     time.Now(),
	}
}
