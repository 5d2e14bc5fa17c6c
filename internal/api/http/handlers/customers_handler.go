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

// CustomersHandler exposes customer CRUD for the authenticated vendor.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	customers, err := h.customers.List(c.Context(), vendor.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"customers": customers})
}

// Create handles POST /customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer := &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.customers.Create(c.Context(), vendor.ID, customer); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(customer)
}

// Update handles PUT /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.customers.Update(c.Context(), vendor.ID, c.Params("id"), &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Delete handles DELETE /customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	if err := h.customers.Delete(c.Context(), vendor.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
