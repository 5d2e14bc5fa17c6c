package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// CustomerRepository encapsulates customer persistence. All reads and writes
// are scoped to the owning vendor.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, vendorID, id string) error
	GetByID(ctx context.Context, vendorID, id string) (*domain.Customer, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository instantiates repository.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (id, vendor_id, name, email, phone, address)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		customer.ID,
		customer.VendorID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	return mapError(err)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET name=$1, email=$2, phone=$3, address=$4, updated_at=NOW()
        WHERE id=$5 AND vendor_id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.ID,
		customer.VendorID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, vendorID, id string) error {
	const query = `DELETE FROM customers WHERE id=$1 AND vendor_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, vendorID)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, vendorID, id string) (*domain.Customer, error) {
	const query = `
        SELECT id, vendor_id, name, email, phone, address, created_at, updated_at
        FROM customers WHERE id=$1 AND vendor_id=$2`
	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, id, vendorID).Scan(
		&customer.ID,
		&customer.VendorID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &customer, nil
}

func (r *customerRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Customer, error) {
	const query = `
        SELECT id, vendor_id, name, email, phone, address, created_at, updated_at
        FROM customers WHERE vendor_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.VendorID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.Address,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, mapError(err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}
