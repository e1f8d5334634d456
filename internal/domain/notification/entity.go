package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("título não pode ser vazio")
	ErrEmptyBranchID = errors.New("ID da filial não pode ser vazio")
	ErrInvalidType   = errors.New("tipo de notificação inválido")
)

// Type representa o tipo da notificação
type Type string

const (
	TypeReservation Type = "reservation"
	TypeInventory   Type = "inventory"
	TypeCustomer    Type = "customer"
	TypeSystem      Type = "system"
)

// Notification representa uma notificação endereçada aos usuários da filial
type Notification struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	UserID      string    `json:"user_id,omitempty"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewNotification cria uma nova notificação. ReferenceID identifica a
// origem (encomenda, ingrediente) e evita lembretes duplicados.
func NewNotification(branchID, userID string, notifType Type, title, message, referenceID string) (*Notification, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	switch notifType {
	case TypeReservation, TypeInventory, TypeCustomer, TypeSystem:
	default:
		return nil, ErrInvalidType
	}

	return &Notification{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		UserID:      userID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
		Read:        false,
		CreatedAt:   time.Now(),
	}, nil
}
