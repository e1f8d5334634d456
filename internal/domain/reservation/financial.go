package reservation

// ComputeTotal soma quantidade x preço de todos os itens. Nenhum
// arredondamento além da precisão da moeda é aplicado aqui; os dois
// decimais são responsabilidade da camada de exibição.
func ComputeTotal(items []Item) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// ComputeRemaining calcula o saldo a pagar na entrega: total menos o
// adiantamento quando houver, senão o próprio total.
func ComputeRemaining(total float64, hasAdvance bool, advanceAmount float64) float64 {
	if hasAdvance {
		return total - advanceAmount
	}
	return total
}

// ValidateAdvance valida o adiantamento no serviço, não apenas no
// formulário: zero <= adiantamento <= total.
func ValidateAdvance(total float64, hasAdvance bool, advanceAmount float64) error {
	if !hasAdvance {
		return nil
	}
	if advanceAmount < 0 || advanceAmount > total {
		return ErrInvalidAdvanceAmount
	}
	return nil
}
