package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/invoice-service/internal/api/dto"
	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/service"
	apperrors "github.com/spec-kit/invoice-service/pkg/util"
)

// PaymentsHandler exposes payment records for the authenticated vendor.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// List handles GET /payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	payments, err := h.payments.List(c.Context(), vendor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"payments": payments})
}

// Update handles PUT /payments/:id.
func (h *PaymentsHandler) Update(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	payment, err := h.payments.Update(c.Context(), vendor.ID, c.Params("id"), &domain.Payment{
		Amount: req.Amount,
		Method: req.Method,
		Status: domain.PaymentStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(payment)
}
