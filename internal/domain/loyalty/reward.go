package loyalty

import (
	"time"

	"github.com/google/uuid"
)

// Reward representa uma recompensa resgatável com pontos
type Reward struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewReward cria uma nova recompensa
func NewReward(branchID, name, description string, pointsRequired int) (*Reward, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if pointsRequired <= 0 {
		return nil, ErrInvalidPointsNeeded
	}

	return &Reward{
		ID:             uuid.New().String(),
		BranchID:       branchID,
		Name:           name,
		Description:    description,
		PointsRequired: pointsRequired,
		Active:         true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}, nil
}

// Deactivate desativa a recompensa sem removê-la
func (r *Reward) Deactivate() {
	r.Active = false
	r.UpdatedAt = time.Now()
}

// DefaultRewards retorna as seis recompensas canônicas usadas para semear
// uma filial sem recompensas cadastradas.
func DefaultRewards(branchID string) []*Reward {
	seeds := []struct {
		name        string
		description string
		points      int
	}{
		{"Cafezinho grátis", "Um café expresso por conta da casa", 50},
		{"Fatia de bolo", "Uma fatia do bolo do dia", 100},
		{"Caixa de brigadeiros", "Caixa com 6 brigadeiros gourmet", 150},
		{"Torta pequena", "Uma torta pequena do cardápio", 300},
		{"Desconto de R$ 50", "Desconto de cinquenta reais em uma encomenda", 500},
		{"Bolo de aniversário", "Um bolo de aniversário de até 2kg", 1000},
	}

	rewards := make([]*Reward, 0, len(seeds))
	for _, s := range seeds {
		rewards = append(rewards, &Reward{
			ID:             uuid.New().String(),
			BranchID:       branchID,
			Name:           s.name,
			Description:    s.description,
			PointsRequired: s.points,
			Active:         true,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		})
	}
	return rewards
}
