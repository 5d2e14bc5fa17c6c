package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/invoice-service/internal/domain"
)

// TemplateRepository encapsulates invoice template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	Update(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, vendorID, id string) error
	GetByID(ctx context.Context, vendorID, id string) (*domain.Template, error)
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Template, error)
}

type templateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository instantiates repository.
func NewTemplateRepository(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepository{pool: pool}
}

func (r *templateRepository) Create(ctx context.Context, template *domain.Template) error {
	const query = `
        INSERT INTO templates (id, vendor_id, name, description, body)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		template.ID,
		template.VendorID,
		template.Name,
		template.Description,
		template.Body,
	).Scan(&template.CreatedAt, &template.UpdatedAt)
	return mapError(err)
}

func (r *templateRepository) Update(ctx context.Context, template *domain.Template) error {
	const query = `
        UPDATE templates SET name=$1, description=$2, body=$3, updated_at=NOW()
        WHERE id=$4 AND vendor_id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		template.Name,
		template.Description,
		template.Body,
		template.ID,
		template.VendorID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *templateRepository) Delete(ctx context.Context, vendorID, id string) error {
	const query = `DELETE FROM templates WHERE id=$1 AND vendor_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, vendorID)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *templateRepository) GetByID(ctx context.Context, vendorID, id string) (*domain.Template, error) {
	const query = `
        SELECT id, vendor_id, name, description, body, created_at, updated_at
        FROM templates WHERE id=$1 AND vendor_id=$2`
	var template domain.Template
	if err := r.pool.QueryRow(ctx, query, id, vendorID).Scan(
		&template.ID,
		&template.VendorID,
		&template.Name,
		&template.Description,
		&template.Body,
		&template.CreatedAt,
		&template.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &template, nil
}

func (r *templateRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Template, error) {
	const query = `
        SELECT id, vendor_id, name, description, body, created_at, updated_at
        FROM templates WHERE vendor_id=$1
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	templates := make([]domain.Template, 0)
	for rows.Next() {
		var template domain.Template
		if err := rows.Scan(
			&template.ID,
			&template.VendorID,
			&template.Name,
			&template.Description,
			&template.Body,
			&template.CreatedAt,
			&template.UpdatedAt,
		); err != nil {
			return nil, mapError(err)
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}
