package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/events"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/pkg/util"
)

func TestPaymentCompletionMarksInvoicePaid(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	payment := &domain.Payment{
		ID:        "P-pay1",
		VendorID:  "V-abc123",
		InvoiceID: "I-inv1",
		Amount:    42,
		Status:    domain.PaymentStatusPending,
	}
	invoice := &domain.Invoice{
		ID:       "I-inv1",
		VendorID: "V-abc123",
		Status:   domain.InvoiceStatusSent,
	}
	var updatedInvoice *domain.Invoice

	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo: &mockPaymentRepo{
			GetByIDFunc: func(ctx context.Context, vendorID, id string) (*domain.Payment, error) {
				return payment, nil
			},
			UpdateFunc: func(ctx context.Context, p *domain.Payment) error {
				return nil
			},
		},
		InvoiceRepo: &mockInvoiceRepo{
			GetByIDFunc: func(ctx context.Context, vendorID, id string) (*domain.Invoice, error) {
				require.Equal(t, "I-inv1", id)
				return invoice, nil
			},
			UpdateFunc: func(ctx context.Context, inv *domain.Invoice) error {
				updatedInvoice = inv
				return nil
			},
		},
		Dispatcher: dispatcher,
	})

	result, err := svc.Update(context.Background(), "V-abc123", "P-pay1", &domain.Payment{
		Status: domain.PaymentStatusCompleted,
		Method: "bank_transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusCompleted, result.Status)
	assert.Equal(t, "bank_transfer", result.Method)
	require.NotNil(t, result.PaidAt)

	require.NotNil(t, updatedInvoice)
	assert.Equal(t, domain.InvoiceStatusPaid, updatedInvoice.Status)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventInvoiceStatusChanged, dispatcher.published[0].Type)
	assert.Equal(t, events.EventPaymentRecorded, dispatcher.published[1].Type)
	recorded, ok := dispatcher.published[1].Payload.(events.PaymentRecordedPayload)
	require.True(t, ok)
	assert.Equal(t, 42.0, recorded.Amount)
}

func TestPaymentCompletionLeavesPaidInvoiceAlone(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	invoiceUpdates := 0

	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo: &mockPaymentRepo{
			GetByIDFunc: func(ctx context.Context, vendorID, id string) (*domain.Payment, error) {
				return &domain.Payment{
					ID:        id,
					VendorID:  vendorID,
					InvoiceID: "I-inv1",
					Status:    domain.PaymentStatusPending,
				}, nil
			},
			UpdateFunc: func(ctx context.Context, p *domain.Payment) error { return nil },
		},
		InvoiceRepo: &mockInvoiceRepo{
			GetByIDFunc: func(ctx context.Context, vendorID, id string) (*domain.Invoice, error) {
				return &domain.Invoice{ID: id, VendorID: vendorID, Status: domain.InvoiceStatusPaid}, nil
			},
			UpdateFunc: func(ctx context.Context, inv *domain.Invoice) error {
				invoiceUpdates++
				return nil
			},
		},
		Dispatcher: dispatcher,
	})

	_, err := svc.Update(context.Background(), "V-abc123", "P-pay1", &domain.Payment{
		Status: domain.PaymentStatusCompleted,
	})
	require.NoError(t, err)

	assert.Zero(t, invoiceUpdates)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventPaymentRecorded, dispatcher.published[0].Type)
}

func TestPaymentUpdateUnknownPayment(t *testing.T) {
	svc := NewPaymentService(PaymentDependencies{
		PaymentRepo: &mockPaymentRepo{
			GetByIDFunc: func(ctx context.Context, vendorID, id string) (*domain.Payment, error) {
				return nil, repository.ErrNotFound
			},
		},
		InvoiceRepo: &mockInvoiceRepo{},
	})

	_, err := svc.Update(context.Background(), "V-abc123", "P-ghost", &domain.Payment{})
	require.Error(t, err)
	assert.Equal(t, 404, util.ToDomainError(err).HTTPStatus)
}
