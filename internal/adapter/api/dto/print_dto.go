package dto

// ReceiptResponse representa um recibo renderizado como texto
type ReceiptResponse struct {
	Layout  string `json:"layout"`
	Content string `json:"content"`
}
