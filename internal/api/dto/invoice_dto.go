package dto

import (
	"time"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// InvoiceRequest payload for creating or updating an invoice. Amounts are
// taken verbatim from the client.
type InvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	TemplateID *string              `json:"template_id"`
	Items      []domain.InvoiceItem `json:"items"`
	Subtotal   float64              `json:"subtotal"`
	Tax        float64              `json:"tax"`
	Total      float64              `json:"total"`
	Status     string               `json:"status"`
	DueAt      *time.Time           `json:"due_at"`
}

// ToDomain maps the request onto a domain invoice.
func (r InvoiceRequest) ToDomain() *domain.Invoice {
	return &domain.Invoice{
		CustomerID: r.CustomerID,
		TemplateID: r.TemplateID,
		Items:      r.Items,
		Subtotal:   r.Subtotal,
		Tax:        r.Tax,
		Total:      r.Total,
		Status:     domain.InvoiceStatus(r.Status),
		DueAt:      r.DueAt,
	}
}
