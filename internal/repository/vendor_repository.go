package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// VendorRepository defines persistence access for vendor accounts. Lookups by
// id use the external identifier, never the storage key. Create relies on the
// unique indexes over username and email and reports races as ErrDuplicateKey.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	Update(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	GetByUsername(ctx context.Context, username string) (*domain.Vendor, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Vendor, error)
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository returns a Postgres-backed implementation.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

const vendorColumns = `id, username, password_hash, email, name, telephone, address,
               business_type, business_code, gst_no, mobile, created_at, updated_at`

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        INSERT INTO vendors (id, username, password_hash, email, name, telephone, address, business_type, business_code, gst_no, mobile)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		vendor.ID,
		vendor.Username,
		vendor.PasswordHash,
		vendor.Email,
		vendor.Name,
		vendor.Telephone,
		vendor.Address,
		vendor.BusinessType,
		vendor.BusinessCode,
		vendor.GSTNo,
		vendor.Mobile,
	).Scan(&vendor.CreatedAt, &vendor.UpdatedAt)
	return mapError(err)
}

func (r *vendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        UPDATE vendors SET username=$1, password_hash=$2, email=$3, name=$4, telephone=$5,
            address=$6, business_type=$7, gst_no=$8, mobile=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		vendor.Username,
		vendor.PasswordHash,
		vendor.Email,
		vendor.Name,
		vendor.Telephone,
		vendor.Address,
		vendor.BusinessType,
		vendor.GSTNo,
		vendor.Mobile,
		vendor.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	const query = `
        SELECT ` + vendorColumns + `
        FROM vendors WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *vendorRepository) GetByUsername(ctx context.Context, username string) (*domain.Vendor, error) {
	const query = `
        SELECT ` + vendorColumns + `
        FROM vendors WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *vendorRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Vendor, error) {
	const query = `
        SELECT ` + vendorColumns + `
        FROM vendors WHERE username=$1 OR email=$2`
	return r.fetchSingle(ctx, query, username, email)
}

func (r *vendorRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&vendor.ID,
		&vendor.Username,
		&vendor.PasswordHash,
		&vendor.Email,
		&vendor.Name,
		&vendor.Telephone,
		&vendor.Address,
		&vendor.BusinessType,
		&vendor.BusinessCode,
		&vendor.GSTNo,
		&vendor.Mobile,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &vendor, nil
}
