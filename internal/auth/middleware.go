package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/repository"
	apperrors "github.com/spec-kit/invoice-service/pkg/util"
)

const vendorKey = "auth_vendor"

// Middleware gates protected routes: it verifies the bearer token, resolves
// the vendor and attaches it to the request context. One signature check and
// one store lookup per request, no caching.
type Middleware struct {
	tokens  *TokenManager
	vendors repository.VendorRepository
}

// NewMiddleware constructs the authentication gate.
func NewMiddleware(tokens *TokenManager, vendors repository.VendorRepository) *Middleware {
	return &Middleware{tokens: tokens, vendors: vendors}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := bearerToken(c.Get("Authorization"))
	if token == "" {
		return apperrors.NewUnauthorized("Authentication required")
	}

	vendorID, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewUnauthorized("Invalid token")
	}

	vendor, err := m.vendors.GetByID(c.Context(), vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized("Invalid token")
		}
		return apperrors.MapError(err)
	}

	c.Locals(vendorKey, vendor)
	return c.Next()
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing header and a missing scheme are treated identically.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return ""
	}
	return parts[1]
}

// VendorFromContext retrieves the authenticated vendor set by the gate.
func VendorFromContext(c *fiber.Ctx) (*domain.Vendor, bool) {
	val := c.Locals(vendorKey)
	if val == nil {
		return nil, false
	}
	vendor, ok := val.(*domain.Vendor)
	return vendor, ok
}
