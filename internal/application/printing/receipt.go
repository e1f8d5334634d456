package printing

import (
	"fmt"
	"strings"
	"time"

	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
	"github.com/dscosta/pos-confeitaria/internal/domain/sale"
	"github.com/dscosta/pos-confeitaria/internal/domain/settings"
)

// Largura da bobina térmica em caracteres
const thermalWidth = 40

// Line é uma linha de item do recibo
type Line struct {
	Name      string  `json:"name"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt é o documento estruturado enviado para impressão
type Receipt struct {
	StoreName            string     `json:"store_name"`
	StoreAddress         string     `json:"store_address"`
	StorePhone           string     `json:"store_phone"`
	CustomerName         string     `json:"customer_name,omitempty"`
	Lines                []Line     `json:"lines"`
	Total                float64    `json:"total"`
	PaymentMethod        string     `json:"payment_method"`
	IssuedAt             time.Time  `json:"issued_at"`
	DeliveryDate         *time.Time `json:"delivery_date,omitempty"`
	HasAdvancePayment    bool       `json:"has_advance_payment,omitempty"`
	AdvanceAmount        float64    `json:"advance_amount,omitempty"`
	AdvancePaymentMethod string     `json:"advance_payment_method,omitempty"`
	RemainingAmount      float64    `json:"remaining_amount,omitempty"`
}

// BuildFromSale monta o recibo de uma venda
func BuildFromSale(s *sale.Sale, store *settings.StoreSettings, customerName string) *Receipt {
	lines := make([]Line, 0, len(s.Items))
	for _, item := range s.Items {
		lines = append(lines, Line{
			Name:      item.ProductName,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.Total,
		})
	}

	return &Receipt{
		StoreName:     store.Name,
		StoreAddress:  store.Address,
		StorePhone:    store.Phone,
		CustomerName:  customerName,
		Lines:         lines,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		IssuedAt:      s.Date,
	}
}

// BuildFromReservation monta o recibo de uma encomenda, incluindo os
// campos de entrega e adiantamento.
func BuildFromReservation(r *reservation.Reservation, store *settings.StoreSettings) *Receipt {
	lines := make([]Line, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, Line{
			Name:      item.ProductName,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     float64(item.Quantity) * item.Price,
		})
	}

	delivery := r.DeliveryDate
	return &Receipt{
		StoreName:            store.Name,
		StoreAddress:         store.Address,
		StorePhone:           store.Phone,
		CustomerName:         r.CustomerName,
		Lines:                lines,
		Total:                r.Total,
		PaymentMethod:        r.PaymentMethod,
		IssuedAt:             r.Date,
		DeliveryDate:         &delivery,
		HasAdvancePayment:    r.HasAdvancePayment,
		AdvanceAmount:        r.AdvanceAmount,
		AdvancePaymentMethod: r.AdvancePaymentMethod,
		RemainingAmount:      r.RemainingAmount,
	}
}

// Render produz o documento imprimível no layout escolhido
func (r *Receipt) Render(layout settings.ReceiptLayout) string {
	if layout == settings.LayoutFull {
		return r.renderFull()
	}
	return r.renderThermal()
}

// renderThermal formata o recibo para bobina térmica estreita
func (r *Receipt) renderThermal() string {
	var b strings.Builder
	divider := strings.Repeat("-", thermalWidth)

	writeCentered(&b, r.StoreName, thermalWidth)
	if r.StoreAddress != "" {
		writeCentered(&b, r.StoreAddress, thermalWidth)
	}
	if r.StorePhone != "" {
		writeCentered(&b, r.StorePhone, thermalWidth)
	}
	b.WriteString(divider + "\n")
	b.WriteString(r.IssuedAt.Format("02/01/2006 15:04") + "\n")
	if r.CustomerName != "" {
		b.WriteString("Cliente: " + r.CustomerName + "\n")
	}
	b.WriteString(divider + "\n")

	for _, line := range r.Lines {
		name := line.Name
		if line.Size != "" {
			name += " (" + line.Size + ")"
		}
		b.WriteString(name + "\n")
		left := fmt.Sprintf("  %d x %.2f", line.Quantity, line.UnitPrice)
		right := fmt.Sprintf("%.2f", line.Total)
		b.WriteString(padBetween(left, right, thermalWidth) + "\n")
	}

	b.WriteString(divider + "\n")
	b.WriteString(padBetween("TOTAL", fmt.Sprintf("%.2f", r.Total), thermalWidth) + "\n")
	b.WriteString("Pagamento: " + r.PaymentMethod + "\n")

	if r.DeliveryDate != nil {
		b.WriteString(divider + "\n")
		b.WriteString("Entrega: " + r.DeliveryDate.Format("02/01/2006") + "\n")
		if r.HasAdvancePayment {
			b.WriteString(padBetween("Adiantado", fmt.Sprintf("%.2f", r.AdvanceAmount), thermalWidth) + "\n")
			b.WriteString(padBetween("Restante", fmt.Sprintf("%.2f", r.RemainingAmount), thermalWidth) + "\n")
		}
	}

	b.WriteString(divider + "\n")
	writeCentered(&b, "Obrigado pela preferência!", thermalWidth)

	return b.String()
}

// renderFull formata o recibo em página inteira
func (r *Receipt) renderFull() string {
	var b strings.Builder

	b.WriteString(r.StoreName + "\n")
	if r.StoreAddress != "" {
		b.WriteString(r.StoreAddress + "\n")
	}
	if r.StorePhone != "" {
		b.WriteString("Telefone: " + r.StorePhone + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Data: " + r.IssuedAt.Format("02/01/2006 15:04") + "\n")
	if r.CustomerName != "" {
		b.WriteString("Cliente: " + r.CustomerName + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-40s %8s %12s %12s\n", "Item", "Qtde", "Unitário", "Total"))
	b.WriteString(strings.Repeat("=", 76) + "\n")
	for _, line := range r.Lines {
		name := line.Name
		if line.Size != "" {
			name += " (" + line.Size + ")"
		}
		b.WriteString(fmt.Sprintf("%-40s %8d %12.2f %12.2f\n", name, line.Quantity, line.UnitPrice, line.Total))
	}
	b.WriteString(strings.Repeat("=", 76) + "\n")
	b.WriteString(fmt.Sprintf("%62s %12.2f\n", "TOTAL", r.Total))
	b.WriteString("Forma de pagamento: " + r.PaymentMethod + "\n")

	if r.DeliveryDate != nil {
		b.WriteString("\n")
		b.WriteString("Data de entrega: " + r.DeliveryDate.Format("02/01/2006") + "\n")
		if r.HasAdvancePayment {
			b.WriteString(fmt.Sprintf("Valor adiantado: %.2f (%s)\n", r.AdvanceAmount, r.AdvancePaymentMethod))
			b.WriteString(fmt.Sprintf("Saldo na entrega: %.2f\n", r.RemainingAmount))
		}
	}

	return b.String()
}

func writeCentered(b *strings.Builder, text string, width int) {
	runes := []rune(text)
	if len(runes) >= width {
		b.WriteString(text + "\n")
		return
	}
	padding := (width - len(runes)) / 2
	b.WriteString(strings.Repeat(" ", padding) + text + "\n")
}

// padBetween alinha left à esquerda e right à direita na largura dada
func padBetween(left, right string, width int) string {
	gap := width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
