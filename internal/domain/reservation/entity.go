package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBranchID           = errors.New("ID da filial não pode ser vazio")
	ErrEmptyCustomerName       = errors.New("nome do cliente não pode ser vazio")
	ErrNoItems                 = errors.New("encomenda precisa de ao menos um item")
	ErrInvalidAdvanceAmount    = errors.New("valor adiantado deve estar entre zero e o total")
	ErrInvalidStatusTransition = errors.New("transição de status não permitida")
	ErrInvalidItem             = errors.New("item da encomenda com quantidade ou preço inválido")
	ErrDeliveryBeforeOrderDate = errors.New("data de entrega não pode ser anterior à data do pedido")
)

// Status representa o estado da encomenda
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Item representa um item da encomenda. A ordem da lista é preservada.
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
}

// Reservation representa uma encomenda para entrega futura.
// Dados do cliente são desnormalizados no pedido, como preenchidos no balcão.
type Reservation struct {
	ID                   string    `json:"id"`
	BranchID             string    `json:"branch_id"`
	CustomerName         string    `json:"customer_name"`
	CustomerPhone        string    `json:"customer_phone"`
	CustomerEmail        string    `json:"customer_email"`
	CustomerAddress      string    `json:"customer_address"`
	Date                 time.Time `json:"date"`
	DeliveryDate         time.Time `json:"delivery_date"`
	Status               Status    `json:"status"`
	Items                []Item    `json:"items"`
	Total                float64   `json:"total"`
	PaymentMethod        string    `json:"payment_method"`
	HasAdvancePayment    bool      `json:"has_advance_payment"`
	AdvanceAmount        float64   `json:"advance_amount"`
	AdvancePaymentMethod string    `json:"advance_payment_method"`
	RemainingAmount      float64   `json:"remaining_amount"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewReservation cria uma nova encomenda com os valores financeiros
// derivados dos itens. O adiantamento é validado contra o total.
func NewReservation(
	branchID, customerName, customerPhone, customerEmail, customerAddress string,
	date, deliveryDate time.Time,
	items []Item,
	paymentMethod string,
	hasAdvancePayment bool,
	advanceAmount float64,
	advancePaymentMethod string,
	notes string,
) (*Reservation, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.Price < 0 {
			return nil, ErrInvalidItem
		}
	}
	if deliveryDate.Before(date) {
		return nil, ErrDeliveryBeforeOrderDate
	}

	total := ComputeTotal(items)
	if err := ValidateAdvance(total, hasAdvancePayment, advanceAmount); err != nil {
		return nil, err
	}
	if !hasAdvancePayment {
		advanceAmount = 0
		advancePaymentMethod = ""
	}

	return &Reservation{
		ID:                   uuid.New().String(),
		BranchID:             branchID,
		CustomerName:         customerName,
		CustomerPhone:        customerPhone,
		CustomerEmail:        customerEmail,
		CustomerAddress:      customerAddress,
		Date:                 date,
		DeliveryDate:         deliveryDate,
		Status:               StatusPending,
		Items:                items,
		Total:                total,
		PaymentMethod:        paymentMethod,
		HasAdvancePayment:    hasAdvancePayment,
		AdvanceAmount:        advanceAmount,
		AdvancePaymentMethod: advancePaymentMethod,
		RemainingAmount:      ComputeRemaining(total, hasAdvancePayment, advanceAmount),
		Notes:                notes,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}, nil
}

// CanTransitionTo informa se a encomenda pode mudar para o status dado.
// pending pode virar completed ou cancelled; ambos são estados terminais.
func (r *Reservation) CanTransitionTo(next Status) bool {
	if r.Status != StatusPending {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled
}

// ChangeStatus aplica uma transição de status. Mudança de status é uma
// atualização isolada: não mexe em estoque nem em pontos de fidelidade.
// Apenas a criação explícita de uma venda dispara esses efeitos.
func (r *Reservation) ChangeStatus(next Status) error {
	if !r.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	r.Status = next
	r.UpdatedAt = time.Now()
	return nil
}

// TotalQuantity soma as quantidades de todos os itens
func (r *Reservation) TotalQuantity() int {
	total := 0
	for _, item := range r.Items {
		total += item.Quantity
	}
	return total
}
