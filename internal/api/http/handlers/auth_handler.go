package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/invoice-service/internal/api/dto"
	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/service"
	apperrors "github.com/spec-kit/invoice-service/pkg/util"
)

// AuthHandler exposes the register, login and profile endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	_, token, err := h.auth.Register(c.Context(), service.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		Email:        req.Email,
		Name:         req.Name,
		Telephone:    req.Telephone,
		Address:      req.Address,
		BusinessType: req.BusinessType,
		GSTNo:        req.GSTNo,
		Mobile:       req.Mobile,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Vendor registered successfully",
		"token":   token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, vendor, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"vendor":  vendor.Summary(),
	})
}

// Profile handles GET /auth/profile. The gate has already resolved the
// vendor; the password hash is excluded by serialization.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	vendor, ok := auth.VendorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	return c.JSON(vendor)
}
