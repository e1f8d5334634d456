package loyalty

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID       = errors.New("ID da filial não pode ser vazio")
	ErrNegativeMinPoints   = errors.New("pontuação mínima não pode ser negativa")
	ErrDuplicateMinPoints  = errors.New("já existe um nível com esta pontuação mínima")
	ErrRewardInactive      = errors.New("recompensa não está ativa")
	ErrInsufficientPoints  = errors.New("pontos insuficientes para o resgate")
	ErrLevelNotFound       = errors.New("nível de fidelidade não encontrado")
	ErrRewardNotFound      = errors.New("recompensa não encontrada")
	ErrInvalidPointsNeeded = errors.New("pontuação exigida deve ser positiva")
)

// PointsPerCurrencyUnit define quantas unidades monetárias valem um ponto
const PointsPerCurrencyUnit = 10.0

// Level representa um nível (tier) do programa de fidelidade.
// Os níveis de uma filial são totalmente ordenados por MinimumPoints.
type Level struct {
	ID                 string    `json:"id"`
	BranchID           string    `json:"branch_id"`
	Name               string    `json:"name"`
	MinimumPoints      int       `json:"minimum_points"`
	DiscountPercentage float64   `json:"discount_percentage"`
	Benefits           []string  `json:"benefits"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewLevel cria um novo nível de fidelidade
func NewLevel(branchID, name string, minimumPoints int, discountPercentage float64, benefits []string) (*Level, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if minimumPoints < 0 {
		return nil, ErrNegativeMinPoints
	}

	return &Level{
		ID:                 uuid.New().String(),
		BranchID:           branchID,
		Name:               name,
		MinimumPoints:      minimumPoints,
		DiscountPercentage: discountPercentage,
		Benefits:           benefits,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}, nil
}

// PointsForOrder converte o valor de um pedido em pontos: um ponto a cada
// dez unidades monetárias, arredondado para baixo. Pedidos abaixo de dez
// não pontuam.
func PointsForOrder(orderTotal float64) int {
	if orderTotal <= 0 {
		return 0
	}
	return int(math.Floor(orderTotal / PointsPerCurrencyUnit))
}

// SelectLevel escolhe, entre os níveis com pontuação mínima menor ou igual
// ao saldo, aquele de maior pontuação mínima. Em caso de empate (que o
// repositório impede por unicidade), o último encontrado vence. Retorna nil
// quando nenhum nível se qualifica.
func SelectLevel(levels []*Level, totalPoints int) *Level {
	var selected *Level
	for _, level := range levels {
		if level.MinimumPoints > totalPoints {
			continue
		}
		if selected == nil || level.MinimumPoints >= selected.MinimumPoints {
			selected = level
		}
	}
	return selected
}

// DefaultLevels retorna os quatro níveis canônicos usados para semear uma
// filial sem programa de fidelidade configurado.
func DefaultLevels(branchID string) []*Level {
	seeds := []struct {
		name     string
		points   int
		discount float64
		benefits []string
	}{
		{"Bronze", 0, 0, []string{"Acúmulo de pontos em todas as compras"}},
		{"Prata", 100, 5, []string{"5% de desconto", "Aviso antecipado de novidades"}},
		{"Ouro", 300, 10, []string{"10% de desconto", "Brinde de aniversário", "Aviso antecipado de novidades"}},
		{"Diamante", 1000, 15, []string{"15% de desconto", "Brinde de aniversário", "Entrega prioritária de encomendas"}},
	}

	levels := make([]*Level, 0, len(seeds))
	for _, s := range seeds {
		levels = append(levels, &Level{
			ID:                 uuid.New().String(),
			BranchID:           branchID,
			Name:               s.name,
			MinimumPoints:      s.points,
			DiscountPercentage: s.discount,
			Benefits:           s.benefits,
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		})
	}
	return levels
}
