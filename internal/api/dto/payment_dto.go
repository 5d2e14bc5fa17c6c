package dto

// PaymentUpdateRequest payload for updating a payment record.
type PaymentUpdateRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Status string  `json:"status"`
}
