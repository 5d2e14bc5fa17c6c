package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/events"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/pkg/util"
)

const (
	invoiceIDPrefix = "I"
	paymentIDPrefix = "P"
)

// InvoiceService handles owner-scoped invoice management. Amounts on an
// invoice are persisted exactly as submitted; totals are never recomputed.
type InvoiceService struct {
	invoices   repository.InvoiceRepository
	customers  repository.CustomerRepository
	payments   repository.PaymentRepository
	dispatcher events.Dispatcher
}

// InvoiceDependencies bundles repositories for the invoice service.
type InvoiceDependencies struct {
	InvoiceRepo  repository.InvoiceRepository
	CustomerRepo repository.CustomerRepository
	PaymentRepo  repository.PaymentRepository
	Dispatcher   events.Dispatcher
}

// NewInvoiceService builds the service.
func NewInvoiceService(deps InvoiceDependencies) *InvoiceService {
	return &InvoiceService{
		invoices:   deps.InvoiceRepo,
		customers:  deps.CustomerRepo,
		payments:   deps.PaymentRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create stores a new invoice for the vendor and opens a pending payment
// record against it.
func (s *InvoiceService) Create(ctx context.Context, vendorID string, invoice *domain.Invoice) error {
	if invoice.CustomerID == "" {
		return util.NewValidationError("Customer is required", nil)
	}
	if _, err := s.customers.GetByID(ctx, vendorID, invoice.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("customer", nil)
		}
		return err
	}

	invoice.ID = util.NewPrefixedID(invoiceIDPrefix)
	invoice.VendorID = vendorID
	invoice.Number = util.NewInvoiceNumber()
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceStatusDraft
	}
	if invoice.IssuedAt.IsZero() {
		invoice.IssuedAt = time.Now()
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return err
	}

	payment := &domain.Payment{
		ID:        util.NewPrefixedID(paymentIDPrefix),
		VendorID:  vendorID,
		InvoiceID: invoice.ID,
		Amount:    invoice.Total,
		Status:    domain.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventInvoiceCreated,
		VendorID: vendorID,
		Payload: events.InvoiceCreatedPayload{
			InvoiceID:  invoice.ID,
			CustomerID: invoice.CustomerID,
			Number:     invoice.Number,
			Total:      invoice.Total,
		},
	})
	return nil
}

// Update modifies an invoice owned by the vendor. Status transitions are
// published for subscribers; the identifier and number never change.
func (s *InvoiceService) Update(ctx context.Context, vendorID, id string, updated *domain.Invoice) (*domain.Invoice, error) {
	existing, err := s.invoices.GetByID(ctx, vendorID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("invoice", nil)
		}
		return nil, err
	}

	oldStatus := existing.Status
	if updated.CustomerID != "" {
		existing.CustomerID = updated.CustomerID
	}
	if updated.TemplateID != nil {
		existing.TemplateID = updated.TemplateID
	}
	if updated.Items != nil {
		existing.Items = updated.Items
		existing.Subtotal = updated.Subtotal
		existing.Tax = updated.Tax
		existing.Total = updated.Total
	}
	if updated.Status != "" {
		existing.Status = updated.Status
	}
	if updated.DueAt != nil {
		existing.DueAt = updated.DueAt
	}

	if err := s.invoices.Update(ctx, existing); err != nil {
		return nil, err
	}

	if existing.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventInvoiceStatusChanged,
			VendorID: vendorID,
			Payload: events.InvoiceStatusChangedPayload{
				InvoiceID: existing.ID,
				OldStatus: oldStatus,
				NewStatus: existing.Status,
			},
		})
	}
	return existing, nil
}

// Delete removes an invoice owned by the vendor.
func (s *InvoiceService) Delete(ctx context.Context, vendorID, id string) error {
	if err := s.invoices.Delete(ctx, vendorID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("invoice", nil)
		}
		return err
	}
	return nil
}

// List returns all invoices of the vendor.
func (s *InvoiceService) List(ctx context.Context, vendorID string) ([]domain.Invoice, error) {
	return s.invoices.ListByVendor(ctx, vendorID)
}

func (s *InvoiceService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
