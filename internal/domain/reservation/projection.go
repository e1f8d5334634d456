package reservation

// LegacyFields é a projeção achatada que leitores antigos esperam:
// os campos do primeiro item espelhados na raiz mais a quantidade total.
// Não é persistida: a lista de itens é a única fonte de verdade e esta
// projeção é derivada na leitura.
type LegacyFields struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// LegacyProjection deriva os campos achatados a partir dos itens
func (r *Reservation) LegacyProjection() LegacyFields {
	if len(r.Items) == 0 {
		return LegacyFields{}
	}

	first := r.Items[0]
	return LegacyFields{
		ProductID:   first.ProductID,
		ProductName: first.ProductName,
		Quantity:    r.TotalQuantity(),
		Price:       first.Price,
	}
}
