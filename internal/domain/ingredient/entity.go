package ingredient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("nome não pode ser vazio")
	ErrEmptyBranchID     = errors.New("ID da filial não pode ser vazio")
	ErrNegativeQuantity  = errors.New("quantidade não pode ser negativa")
	ErrInsufficientStock = errors.New("quantidade insuficiente em estoque")
	ErrZeroDelta         = errors.New("ajuste de quantidade não pode ser zero")
)

// MovementType representa o tipo de movimentação no livro de estoque
type MovementType string

const (
	MovementIn  MovementType = "entrada"
	MovementOut MovementType = "saída"
)

// StockStatus é a classificação do nível de estoque para relatórios
type StockStatus string

const (
	StockCritical StockStatus = "Crítico"
	StockLow      StockStatus = "Baixo"
	StockNormal   StockStatus = "Normal"
)

// Ingredient representa uma matéria-prima controlada por filial
type Ingredient struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	MinQuantity float64   `json:"min_quantity"`
	Unit        string    `json:"unit"`
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryEntry é um registro imutável do livro de movimentações.
// A quantidade é sempre positiva; o sinal fica no tipo.
type HistoryEntry struct {
	ID           string       `json:"id"`
	IngredientID string       `json:"ingredient_id"`
	BranchID     string       `json:"branch_id"`
	Type         MovementType `json:"type"`
	Quantity     float64      `json:"quantity"`
	Reason       string       `json:"reason"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewIngredient cria um novo ingrediente
func NewIngredient(branchID, name string, quantity, minQuantity float64, unit string, cost float64) (*Ingredient, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if quantity < 0 || minQuantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Ingredient{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		Name:        name,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Unit:        unit,
		Cost:        cost,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// ApplyAdjustment valida e aplica um ajuste de quantidade, devolvendo o
// registro de histórico correspondente. O saldo nunca fica negativo: um
// ajuste que violaria isso é rejeitado sem alterar o ingrediente.
func (i *Ingredient) ApplyAdjustment(delta float64, reason string) (*HistoryEntry, error) {
	if delta == 0 {
		return nil, ErrZeroDelta
	}

	newQuantity := i.Quantity + delta
	if newQuantity < 0 {
		return nil, ErrInsufficientStock
	}

	movType := MovementIn
	quantity := delta
	if delta < 0 {
		movType = MovementOut
		quantity = -delta
	}

	i.Quantity = newQuantity
	i.UpdatedAt = time.Now()

	return &HistoryEntry{
		ID:           uuid.New().String(),
		IngredientID: i.ID,
		BranchID:     i.BranchID,
		Type:         movType,
		Quantity:     quantity,
		Reason:       reason,
		CreatedAt:    time.Now(),
	}, nil
}

// Status classifica o nível atual de estoque:
// abaixo do mínimo é Crítico, abaixo de 1,5x o mínimo é Baixo.
func (i *Ingredient) Status() StockStatus {
	if i.Quantity < i.MinQuantity {
		return StockCritical
	}
	if i.Quantity < 1.5*i.MinQuantity {
		return StockLow
	}
	return StockNormal
}

// Update atualiza os dados cadastrais do ingrediente.
// A quantidade só muda via ajustes com histórico.
func (i *Ingredient) Update(name string, minQuantity float64, unit string, cost float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if minQuantity < 0 {
		return ErrNegativeQuantity
	}

	i.Name = name
	i.MinQuantity = minQuantity
	i.Unit = unit
	i.Cost = cost
	i.UpdatedAt = time.Now()
	return nil
}
