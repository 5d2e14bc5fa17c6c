package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// PaymentRepository encapsulates payment record persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, vendorID, id string) (*domain.Payment, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (id, vendor_id, invoice_id, amount, method, status, paid_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		payment.ID,
		payment.VendorID,
		payment.InvoiceID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.PaidAt,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	return mapError(err)
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET amount=$1, method=$2, status=$3, paid_at=$4, updated_at=NOW()
        WHERE id=$5 AND vendor_id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.PaidAt,
		payment.ID,
		payment.VendorID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, vendorID, id string) (*domain.Payment, error) {
	const query = `
        SELECT id, vendor_id, invoice_id, amount, method, status, paid_at, created_at, updated_at
        FROM payments WHERE id=$1 AND vendor_id=$2`
	var payment domain.Payment
	if err := r.pool.QueryRow(ctx, query, id, vendorID).Scan(
		&payment.ID,
		&payment.VendorID,
		&payment.InvoiceID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &payment, nil
}

func (r *paymentRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Payment, error) {
	const query = `
        SELECT id, vendor_id, invoice_id, amount, method, status, paid_at, created_at, updated_at
        FROM payments WHERE vendor_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.VendorID,
			&payment.InvoiceID,
			&payment.Amount,
			&payment.Method,
			&payment.Status,
			&payment.PaidAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		); err != nil {
			return nil, mapError(err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
