package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/invoice-service/internal/api/dto"
	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/service"
	apperrors "github.com/spec-kit/invoice-service/pkg/util"
)

// InvoicesHandler exposes invoice CRUD for the authenticated vendor.
type InvoicesHandler struct {
	invoices *service.InvoiceService
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoices *service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{invoices: invoices}
}

// List handles GET /invoices.
func (h *InvoicesHandler) List(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	invoices, err := h.invoices.List(c.Context(), vendor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"invoices": invoices})
}

// Create handles POST /invoices.
func (h *InvoicesHandler) Create(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	invoice := req.ToDomain()
	if err := h.invoices.Create(c.Context(), vendor.ID, invoice); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(invoice)
}

// Update handles PUT /invoices/:id.
func (h *InvoicesHandler) Update(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	invoice, err := h.invoices.Update(c.Context(), vendor.ID, c.Params("id"), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(invoice)
}

// Delete handles DELETE /invoices/:id.
func (h *InvoicesHandler) Delete(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	if err := h.invoices.Delete(c.Context(), vendor.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}
