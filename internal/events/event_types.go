package events

import (
	"time"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventVendorRegistered     EventType = "vendor_registered"
	EventInvoiceCreated       EventType = "invoice_created"
	EventInvoiceStatusChanged EventType = "invoice_status_changed"
	EventPaymentRecorded      EventType = "payment_recorded"
)

// Event represents a domain event emitted by services. VendorID identifies
// the tenant the event belongs to.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	VendorID  string      `json:"vendor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// VendorRegisteredPayload payload.
type VendorRegisteredPayload struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	BusinessCode string `json:"business_code"`
}

// InvoiceCreatedPayload payload.
type InvoiceCreatedPayload struct {
	InvoiceID  string  `json:"invoice_id"`
	CustomerID string  `json:"customer_id"`
	Number     string  `json:"number"`
	Total      float64 `json:"total"`
}

// InvoiceStatusChangedPayload payload.
type InvoiceStatusChangedPayload struct {
	InvoiceID string               `json:"invoice_id"`
	OldStatus domain.InvoiceStatus `json:"old_status"`
	NewStatus domain.InvoiceStatus `json:"new_status"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID string               `json:"payment_id"`
	InvoiceID string               `json:"invoice_id"`
	Amount    float64              `json:"amount"`
	Status    domain.PaymentStatus `json:"status"`
}
