package service

import (
	"context"
	"errors"

	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/pkg/util"
)

const templateIDPrefix = "T"

// TemplateService handles owner-scoped invoice template management.
type TemplateService struct {
	templates repository.TemplateRepository
}

// NewTemplateService builds the service.
func NewTemplateService(templates repository.TemplateRepository) *TemplateService {
	return &TemplateService{templates: templates}
}

// Create stores a new template under the vendor.
func (s *TemplateService) Create(ctx context.Context, vendorID string, template *domain.Template) error {
	if template.Name == "" {
		return util.NewValidationError("Template name is required", nil)
	}
	template.ID = util.NewPrefixedID(templateIDPrefix)
	template.VendorID = vendorID
	return s.templates.Create(ctx, template)
}

// Update modifies a template owned by the vendor.
func (s *TemplateService) Update(ctx context.Context, vendorID, id string, template *domain.Template) (*domain.Template, error) {
	existing, err := s.templates.GetByID(ctx, vendorID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("template", nil)
		}
		return nil, err
	}

	if template.Name != "" {
		existing.Name = template.Name
	}
	existing.Description = template.Description
	existing.Body = template.Body

	if err := s.templates.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a template owned by the vendor.
func (s *TemplateService) Delete(ctx context.Context, vendorID, id string) error {
	if err := s.templates.Delete(ctx, vendorID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("template", nil)
		}
		return err
	}
	return nil
}

// List returns all templates of the vendor.
func (s *TemplateService) List(ctx context.Context, vendorID string) ([]domain.Template, error) {
	return s.templates.ListByVendor(ctx, vendorID)
}
