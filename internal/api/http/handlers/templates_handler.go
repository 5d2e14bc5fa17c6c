package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/invoice-service/internal/api/dto"
	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/service"
	apperrors "github.com/spec-kit/invoice-service/pkg/util"
)

// TemplatesHandler exposes template CRUD for the authenticated vendor.
type TemplatesHandler struct {
	templates *service.TemplateService
}

// NewTemplatesHandler constructs handler.
func NewTemplatesHandler(templates *service.TemplateService) *TemplatesHandler {
	return &TemplatesHandler{templates: templates}
}

// List handles GET /templates.
func (h *TemplatesHandler) List(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	templates, err := h.templates.List(c.Context(), vendor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"templates": templates})
}

// Create handles POST /templates.
func (h *TemplatesHandler) Create(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	template := &domain.Template{
		Name:        req.Name,
		Description: req.Description,
		Body:        req.Body,
	}
	if err := h.templates.Create(c.Context(), vendor.ID, template); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(template)
}

// Update handles PUT /templates/:id.
func (h *TemplatesHandler) Update(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	template, err := h.templates.Update(c.Context(), vendor.ID, c.Params("id"), &domain.Template{
		Name:        req.Name,
		Description: req.Description,
		Body:        req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(template)
}

// Delete handles DELETE /templates/:id.
func (h *TemplatesHandler) Delete(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	if err := h.templates.Delete(c.Context(), vendor.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Template deleted"})
}
