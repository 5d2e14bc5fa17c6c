package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// InvoiceRepository encapsulates invoice persistence. Line items are stored
// as a jsonb document; amounts are persisted exactly as received.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, vendorID, id string) error
	GetByID(ctx context.Context, vendorID, id string) (*domain.Invoice, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO invoices (id, vendor_id, customer_id, template_id, number, items, subtotal, tax, total, status, issued_at, due_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING created_at, updated_at`
	err = r.pool.QueryRow(ctx, query,
		invoice.ID,
		invoice.VendorID,
		invoice.CustomerID,
		invoice.TemplateID,
		invoice.Number,
		items,
		invoice.Subtotal,
		invoice.Tax,
		invoice.Total,
		invoice.Status,
		invoice.IssuedAt,
		invoice.DueAt,
	).Scan(&invoice.CreatedAt, &invoice.UpdatedAt)
	return mapError(err)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return err
	}

	const query = `
        UPDATE invoices SET customer_id=$1, template_id=$2, items=$3, subtotal=$4, tax=$5,
            total=$6, status=$7, issued_at=$8, due_at=$9, updated_at=NOW()
        WHERE id=$10 AND vendor_id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		invoice.CustomerID,
		invoice.TemplateID,
		items,
		invoice.Subtotal,
		invoice.Tax,
		invoice.Total,
		invoice.Status,
		invoice.IssuedAt,
		invoice.DueAt,
		invoice.ID,
		invoice.VendorID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, vendorID, id string) error {
	const query = `DELETE FROM invoices WHERE id=$1 AND vendor_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, vendorID)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, vendorID, id string) (*domain.Invoice, error) {
	const query = `
        SELECT id, vendor_id, customer_id, template_id, number, items, subtotal, tax, total, status, issued_at, due_at, created_at, updated_at
        FROM invoices WHERE id=$1 AND vendor_id=$2`
	return r.scanRow(r.pool.QueryRow(ctx, query, id, vendorID))
}

func (r *invoiceRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Invoice, error) {
	const query = `
        SELECT id, vendor_id, customer_id, template_id, number, items, subtotal, tax, total, status, issued_at, due_at, created_at, updated_at
        FROM invoices WHERE vendor_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		invoice, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *invoice)
	}
	return invoices, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *invoiceRepository) scanRow(row rowScanner) (*domain.Invoice, error) {
	var invoice domain.Invoice
	var items []byte
	if err := row.Scan(
		&invoice.ID,
		&invoice.VendorID,
		&invoice.CustomerID,
		&invoice.TemplateID,
		&invoice.Number,
		&items,
		&invoice.Subtotal,
		&invoice.Tax,
		&invoice.Total,
		&invoice.Status,
		&invoice.IssuedAt,
		&invoice.DueAt,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &invoice.Items); err != nil {
			return nil, err
		}
	}
	return &invoice, nil
}
