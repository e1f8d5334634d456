package settings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidReceiptLayout = errors.New("layout de recibo inválido")
)

// ReceiptLayout define o layout de impressão de recibos
type ReceiptLayout string

const (
	LayoutThermal ReceiptLayout = "thermal" // Bobina térmica de PDV
	LayoutFull    ReceiptLayout = "full"    // Página inteira
)

// StoreSettings guarda as configurações da loja. Um registro sem filial
// (BranchID vazio) é a configuração global, usada como retaguarda quando a
// filial não tem configuração própria.
type StoreSettings struct {
	ID            string        `json:"id"`
	BranchID      string        `json:"branch_id,omitempty"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Theme         string        `json:"theme"`
	ReceiptLayout ReceiptLayout `json:"receipt_layout"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewStoreSettings cria uma configuração de loja. branchID vazio cria a
// configuração global.
func NewStoreSettings(branchID, name, address, phone, email, theme string, layout ReceiptLayout) (*StoreSettings, error) {
	if layout == "" {
		layout = LayoutThermal
	}
	if layout != LayoutThermal && layout != LayoutFull {
		return nil, ErrInvalidReceiptLayout
	}
	if theme == "" {
		theme = "light"
	}

	return &StoreSettings{
		ID:            uuid.New().String(),
		BranchID:      branchID,
		Name:          name,
		Address:       address,
		Phone:         phone,
		Email:         email,
		Theme:         theme,
		ReceiptLayout: layout,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

// Update atualiza a configuração
func (s *StoreSettings) Update(name, address, phone, email, theme string, layout ReceiptLayout) error {
	if layout != LayoutThermal && layout != LayoutFull {
		return ErrInvalidReceiptLayout
	}

	s.Name = name
	s.Address = address
	s.Phone = phone
	s.Email = email
	s.Theme = theme
	s.ReceiptLayout = layout
	s.UpdatedAt = time.Now()
	return nil
}
