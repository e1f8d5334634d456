package dto

import (
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
)

// ReservationItemRequest representa um item da encomenda
type ReservationItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Size        string  `json:"size"`
}

// ReservationRequest representa a criação/atualização de encomenda
type ReservationRequest struct {
	CustomerName         string                   `json:"customer_name" binding:"required"`
	CustomerPhone        string                   `json:"customer_phone"`
	CustomerEmail        string                   `json:"customer_email" binding:"omitempty,email"`
	CustomerAddress      string                   `json:"customer_address"`
	Date                 time.Time                `json:"date" binding:"required"`
	DeliveryDate         time.Time                `json:"delivery_date" binding:"required"`
	Items                []ReservationItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod        string                   `json:"payment_method"`
	HasAdvancePayment    bool                     `json:"has_advance_payment"`
	AdvanceAmount        float64                  `json:"advance_amount" binding:"gte=0"`
	AdvancePaymentMethod string                   `json:"advance_payment_method"`
	Notes                string                   `json:"notes"`
}

// ReservationStatusRequest representa a mudança de status de uma encomenda
type ReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

// ReservationItemResponse representa um item na resposta
type ReservationItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
}

// ReservationResponse representa a resposta de encomenda. Os campos
// achatados (product_id, product_name, quantity, price) espelham o
// primeiro item para leitores antigos e são derivados na leitura.
type ReservationResponse struct {
	ID                   string                    `json:"id"`
	BranchID             string                    `json:"branch_id"`
	CustomerName         string                    `json:"customer_name"`
	CustomerPhone        string                    `json:"customer_phone"`
	CustomerEmail        string                    `json:"customer_email"`
	CustomerAddress      string                    `json:"customer_address"`
	Date                 time.Time                 `json:"date"`
	DeliveryDate         time.Time                 `json:"delivery_date"`
	Status               string                    `json:"status"`
	Items                []ReservationItemResponse `json:"items"`
	ProductID            string                    `json:"product_id"`
	ProductName          string                    `json:"product_name"`
	Quantity             int                       `json:"quantity"`
	Price                float64                   `json:"price"`
	Total                float64                   `json:"total"`
	PaymentMethod        string                    `json:"payment_method"`
	HasAdvancePayment    bool                      `json:"has_advance_payment"`
	AdvanceAmount        float64                   `json:"advance_amount"`
	AdvancePaymentMethod string                    `json:"advance_payment_method"`
	RemainingAmount      float64                   `json:"remaining_amount"`
	Notes                string                    `json:"notes"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

// ToReservationItems converte os itens da requisição para o domínio,
// preservando a ordem enviada
func ToReservationItems(items []ReservationItemRequest) []reservation.Item {
	result := make([]reservation.Item, len(items))
	for i, item := range items {
		result[i] = reservation.Item{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Size:        item.Size,
		}
	}
	return result
}

// ToReservationResponse converte um modelo de domínio em uma resposta DTO
func ToReservationResponse(r *reservation.Reservation) ReservationResponse {
	items := make([]ReservationItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = ReservationItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Size:        item.Size,
		}
	}

	legacy := r.LegacyProjection()

	return ReservationResponse{
		ID:                   r.ID,
		BranchID:             r.BranchID,
		CustomerName:         r.CustomerName,
		CustomerPhone:        r.CustomerPhone,
		CustomerEmail:        r.CustomerEmail,
		CustomerAddress:      r.CustomerAddress,
		Date:                 r.Date,
		DeliveryDate:         r.DeliveryDate,
		Status:               string(r.Status),
		Items:                items,
		ProductID:            legacy.ProductID,
		ProductName:          legacy.ProductName,
		Quantity:             legacy.Quantity,
		Price:                legacy.Price,
		Total:                r.Total,
		PaymentMethod:        r.PaymentMethod,
		HasAdvancePayment:    r.HasAdvancePayment,
		AdvanceAmount:        r.AdvanceAmount,
		AdvancePaymentMethod: r.AdvancePaymentMethod,
		RemainingAmount:      r.RemainingAmount,
		Notes:                r.Notes,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// ToReservationListResponse converte uma lista de encomendas
func ToReservationListResponse(reservations []*reservation.Reservation) []ReservationResponse {
	response := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		response[i] = ToReservationResponse(r)
	}
	return response
}
