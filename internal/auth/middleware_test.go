package auth

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/repository"
	apperrors "github.com/spec-kit/invoice-service/pkg/util"
)

type mockVendorRepo struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Vendor, error)
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error { return nil }
func (m *mockVendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error { return nil }
func (m *mockVendorRepo) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockVendorRepo) GetByUsername(ctx context.Context, username string) (*domain.Vendor, error) {
	return nil, repository.ErrNotFound
}
func (m *mockVendorRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Vendor, error) {
	return nil, repository.ErrNotFound
}

func newGateApp(t *testing.T, tm *TokenManager, repo repository.VendorRepository) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"message": de.Message})
		}
		return nil
	})

	gate := NewMiddleware(tm, repo)
	app.Get("/protected", gate.Handle, func(c *fiber.Ctx) error {
		vendor, ok := VendorFromContext(c)
		if !ok {
			return apperrors.NewInternalError(errors.New("vendor missing from context"))
		}
		return c.JSON(fiber.Map{"vendor_id": vendor.ID})
	})
	return app
}

func TestGateRejectsUnauthenticatedRequests(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &mockVendorRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Vendor, error) {
			return nil, repository.ErrNotFound
		},
	}
	app := newGateApp(t, tm, repo)

	valid, _, err := tm.Issue("V-ghost")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"missing scheme", "sometoken"},
		{"wrong scheme", "Basic sometoken"},
		{"empty token", "Bearer "},
		{"tampered token", "Bearer " + valid[:len(valid)-4] + "AAAA"},
		{"subject no longer exists", "Bearer " + valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestGateAttachesVendorOnSuccess(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &mockVendorRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Vendor, error) {
			require.Equal(t, "V-abc123", id)
			return &domain.Vendor{ID: id, Username: "alice"}, nil
		},
	}
	app := newGateApp(t, tm, repo)

	token, _, err := tm.Issue("V-abc123")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "V-abc123")
}

func TestGateMapsStoreFailuresToInternal(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &mockVendorRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Vendor, error) {
			return nil, errors.New("store unavailable")
		},
	}
	app := newGateApp(t, tm, repo)

	token, _, err := tm.Issue("V-abc123")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
