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

// PaymentService handles payment records opened alongside invoices. Marking a
// payment completed flips the invoice to PAID; no amounts are computed here.
type PaymentService struct {
	payments   repository.PaymentRepository
	invoices   repository.InvoiceRepository
	dispatcher events.Dispatcher
}

// PaymentDependencies bundles repositories for the payment service.
type PaymentDependencies struct {
	PaymentRepo repository.PaymentRepository
	InvoiceRepo repository.InvoiceRepository
	Dispatcher  events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	return &PaymentService{
		payments:   deps.PaymentRepo,
		invoices:   deps.InvoiceRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Update records a change on a payment owned by the vendor. A transition to
// COMPLETED stamps paid_at and marks the linked invoice paid.
func (s *PaymentService) Update(ctx context.Context, vendorID, id string, updated *domain.Payment) (*domain.Payment, error) {
	existing, err := s.payments.GetByID(ctx, vendorID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("payment", nil)
		}
		return nil, err
	}

	if updated.Method != "" {
		existing.Method = updated.Method
	}
	if updated.Amount != 0 {
		existing.Amount = updated.Amount
	}
	if updated.Status != "" {
		existing.Status = updated.Status
	}
	if existing.Status == domain.PaymentStatusCompleted && existing.PaidAt == nil {
		now := time.Now()
		existing.PaidAt = &now
	}

	if err := s.payments.Update(ctx, existing); err != nil {
		return nil, err
	}

	if existing.Status == domain.PaymentStatusCompleted {
		if err := s.markInvoicePaid(ctx, vendorID, existing.InvoiceID); err != nil {
			return nil, err
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventPaymentRecorded,
		VendorID: vendorID,
		Payload: events.PaymentRecordedPayload{
			PaymentID: existing.ID,
			InvoiceID: existing.InvoiceID,
			Amount:    existing.Amount,
			Status:    existing.Status,
		},
	})
	return existing, nil
}

// List returns all payments of the vendor.
func (s *PaymentService) List(ctx context.Context, vendorID string) ([]domain.Payment, error) {
	return s.payments.ListByVendor(ctx, vendorID)
}

func (s *PaymentService) markInvoicePaid(ctx context.Context, vendorID, invoiceID string) error {
	invoice, err := s.invoices.GetByID(ctx, vendorID, invoiceID)
	if err != nil {
		// payment may outlive a deleted invoice; nothing left to mark
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if invoice.Status == domain.InvoiceStatusPaid {
		return nil
	}
	oldStatus := invoice.Status
	invoice.Status = domain.InvoiceStatusPaid
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventInvoiceStatusChanged,
		VendorID: vendorID,
		Payload: events.InvoiceStatusChangedPayload{
			InvoiceID: invoice.ID,
			OldStatus: oldStatus,
			NewStatus: invoice.Status,
		},
	})
	return nil
}

func (s *PaymentService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
