package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventVendorRegistered, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:       "evt-1",
		Type:     EventVendorRegistered,
		VendorID: "V-abc123",
	})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "V-abc123", received[0].VendorID)
}

func TestPublishSkipsUnrelatedSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventInvoiceCreated, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventPaymentRecorded}))
	assert.False(t, called)
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventInvoiceCreated, func(ctx context.Context, event Event) error {
		order = append(order, "first")
		return errors.New("handler failed")
	})
	d.Subscribe(EventInvoiceCreated, func(ctx context.Context, event Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventInvoiceCreated}))
	assert.Equal(t, []string{"first", "second"}, order)
}
