package report

import (
	"sort"

	"github.com/dscosta/pos-confeitaria/internal/domain/reservation"
)

// StatusSummary resume as encomendas de um status
type StatusSummary struct {
	Status       reservation.Status `json:"status"`
	Count        int                `json:"count"`
	PendingValue float64            `json:"pending_value"`
}

// WeekdayCount é o número de encomendas entregues em um dia da semana
type WeekdayCount struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// ReservedProduct é o total encomendado de um produto
type ReservedProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

var weekdayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// ReservationsByStatus agrupa contagem e valor a receber por status.
// O valor pendente é o saldo restante das encomendas de cada status.
func ReservationsByStatus(reservations []*reservation.Reservation) []StatusSummary {
	order := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusCompleted,
		reservation.StatusCancelled,
	}

	byStatus := make(map[reservation.Status]*StatusSummary)
	for _, status := range order {
		byStatus[status] = &StatusSummary{Status: status}
	}

	for _, r := range reservations {
		summary, ok := byStatus[r.Status]
		if !ok {
			continue
		}
		summary.Count++
		summary.PendingValue += r.RemainingAmount
	}

	result := make([]StatusSummary, 0, len(order))
	for _, status := range order {
		result = append(result, *byStatus[status])
	}
	return result
}

// ReservationsByWeekday monta o histograma de entregas pelos sete dias da
// semana, sempre com os sete baldes presentes.
func ReservationsByWeekday(reservations []*reservation.Reservation) []WeekdayCount {
	counts := make([]WeekdayCount, 7)
	for idx := range counts {
		counts[idx] = WeekdayCount{Weekday: weekdayNames[idx]}
	}

	for _, r := range reservations {
		counts[int(r.DeliveryDate.Weekday())].Count++
	}

	return counts
}

// TopReservedProducts retorna os dez produtos mais encomendados por
// quantidade no conjunto dado.
func TopReservedProducts(reservations []*reservation.Reservation) []ReservedProduct {
	byProduct := make(map[string]*ReservedProduct)
	for _, r := range reservations {
		for _, item := range r.Items {
			entry, ok := byProduct[item.ProductID]
			if !ok {
				entry = &ReservedProduct{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = entry
			}
			entry.Quantity += item.Quantity
		}
	}

	ranking := make([]ReservedProduct, 0, len(byProduct))
	for _, entry := range byProduct {
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].ProductName < ranking[j].ProductName
	})

	if len(ranking) > 10 {
		ranking = ranking[:10]
	}
	return ranking
}
