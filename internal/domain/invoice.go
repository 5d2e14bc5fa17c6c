package domain

import "time"

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	InvoiceStatusSent  InvoiceStatus = "SENT"
	InvoiceStatusPaid  InvoiceStatus = "PAID"
)

// InvoiceItem is one line on an invoice. Amounts are recorded as submitted by
// the client; the service never recomputes them.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Invoice is an issued bill from a vendor to one of its customers.
type Invoice struct {
	ID         string        `json:"id"`
	VendorID   string        `json:"vendor_id"`
	CustomerID string        `json:"customer_id"`
	TemplateID *string       `json:"template_id,omitempty"`
	Number     string        `json:"number"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	Tax        float64       `json:"tax"`
	Total      float64       `json:"total"`
	Status     InvoiceStatus `json:"status"`
	IssuedAt   time.Time     `json:"issued_at"`
	DueAt      *time.Time    `json:"due_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
