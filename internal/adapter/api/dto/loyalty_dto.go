package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/loyalty"
)

// LoyaltyLevelRequest representa a criação de um nível de fidelidade
type LoyaltyLevelRequest struct {
	Name               string   `json:"name" binding:"required"`
	MinimumPoints      int      `json:"minimum_points" binding:"gte=0"`
	DiscountPercentage float64  `json:"discount_percentage" binding:"gte=0,lte=100"`
	Benefits           []string `json:"benefits"`
}

// LoyaltyRewardRequest representa a criação/atualização de recompensa
type LoyaltyRewardRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required" binding:"required,gt=0"`
	Active         *bool  `json:"active"`
}

// RedeemRequest representa o pedido de resgate de uma recompensa
type RedeemRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	RewardID   string `json:"reward_id" binding:"required"`
}

// LoyaltyLevelResponse representa a resposta de nível de fidelidade
type LoyaltyLevelResponse struct {
	ID                 string    `json:"id"`
	BranchID           string    `json:"branch_id"`
	Name               string    `json:"name"`
	MinimumPoints      int       `json:"minimum_points"`
	DiscountPercentage float64   `json:"discount_percentage"`
	Benefits           []string  `json:"benefits"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LoyaltyRewardResponse representa a resposta de recompensa
type LoyaltyRewardResponse struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RedemptionResponse representa a resposta de um resgate
type RedemptionResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	RewardID       string    `json:"reward_id"`
	RewardName     string    `json:"reward_name"`
	PointsRedeemed int       `json:"points_redeemed"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

// ToLoyaltyLevelResponse converte um modelo de domínio em uma resposta DTO
func ToLoyaltyLevelResponse(l *loyalty.Level) LoyaltyLevelResponse {
	return LoyaltyLevelResponse{
		ID:                 l.ID,
		BranchID:           l.BranchID,
		Name:               l.Name,
		MinimumPoints:      l.MinimumPoints,
		DiscountPercentage: l.DiscountPercentage,
		Benefits:           l.Benefits,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

// ToLoyaltyLevelListResponse converte uma lista de níveis
func ToLoyaltyLevelListResponse(levels []*loyalty.Level) []LoyaltyLevelResponse {
	response := make([]LoyaltyLevelResponse, len(levels))
	for i, l := range levels {
		response[i] = ToLoyaltyLevelResponse(l)
	}
	return response
}

// ToLoyaltyRewardResponse converte um modelo de domínio em uma resposta DTO
func ToLoyaltyRewardResponse(r *loyalty.Reward) LoyaltyRewardResponse {
	return LoyaltyRewardResponse{
		ID:             r.ID,
		BranchID:       r.BranchID,
		Name:           r.Name,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToLoyaltyRewardListResponse converte uma lista de recompensas
func ToLoyaltyRewardListResponse(rewards []*loyalty.Reward) []LoyaltyRewardResponse {
	response := make([]LoyaltyRewardResponse, len(rewards))
	for i, r := range rewards {
		response[i] = ToLoyaltyRewardResponse(r)
	}
	return response
}

// ToRedemptionResponse converte um modelo de domínio em uma resposta DTO
func ToRedemptionResponse(r *loyalty.Redemption) RedemptionResponse {
	return RedemptionResponse{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		RewardID:       r.RewardID,
		RewardName:     r.RewardName,
		PointsRedeemed: r.PointsRedeemed,
		RedeemedAt:     r.RedeemedAt,
	}
}

// ToRedemptionListResponse converte uma lista de resgates
func ToRedemptionListResponse(redemptions []*loyalty.Redemption) []RedemptionResponse {
	response := make([]RedemptionResponse, len(redemptions))
	for i, r := range redemptions {
		response[i] = ToRedemptionResponse(r)
	}
	return response
}
