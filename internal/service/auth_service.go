package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/config"
	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/events"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/internal/validation"
	"github.com/spec-kit/invoice-service/pkg/util"
)

const (
	vendorIDPrefix     = "V"
	businessCodePrefix = "B"
)

// RegisterInput carries the fields submitted at registration.
type RegisterInput struct {
	Username     string
	Password     string
	Email        string
	Name         string
	Telephone    string
	Address      string
	BusinessType string
	GSTNo        string
	Mobile       string
}

// AuthService composes validation, identity generation, the vendor store and
// the token manager into the register and login operations.
type AuthService struct {
	vendors    repository.VendorRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	VendorRepo repository.VendorRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		vendors:    deps.VendorRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new vendor account and returns its external identifier
// with a freshly issued token. The duplicate pre-check is advisory only; the
// store's unique indexes decide races, and a lost race surfaces as the same
// Conflict the pre-check would have produced.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, string, error) {
	if result := validation.Username(in.Username); !result.Valid {
		return "", "", util.NewValidationError(result.Reason, nil)
	}
	if result := validation.Password(in.Password); !result.Valid {
		return "", "", util.NewValidationError(result.Reason, nil)
	}
	if !validation.TaxID(in.GSTNo) {
		return "", "", util.NewValidationError("GST number must be exactly 15 characters", nil)
	}

	if _, err := s.vendors.GetByUsernameOrEmail(ctx, in.Username, in.Email); err == nil {
		return "", "", util.NewConflict("Username or email already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", "", err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", "", err
	}

	vendor := &domain.Vendor{
		ID:           util.NewPrefixedID(vendorIDPrefix),
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		Name:         in.Name,
		Telephone:    in.Telephone,
		Address:      in.Address,
		BusinessType: in.BusinessType,
		BusinessCode: util.NewPrefixedID(businessCodePrefix),
		GSTNo:        in.GSTNo,
		Mobile:       in.Mobile,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return "", "", util.NewConflict("Username or email already exists", nil)
		}
		return "", "", err
	}

	token, _, err := s.tokenMgr.Issue(vendor.ID)
	if err != nil {
		return "", "", err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventVendorRegistered,
		VendorID: vendor.ID,
		Payload: events.VendorRegisteredPayload{
			Username:     vendor.Username,
			Email:        vendor.Email,
			BusinessCode: vendor.BusinessCode,
		},
	})

	return vendor.ID, token, nil
}

// Login authenticates a vendor by username. Unknown usernames and wrong
// passwords produce the same response so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Vendor, error) {
	vendor, err := s.vendors.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, util.NewUnauthorized("Invalid credentials")
		}
		return "", nil, err
	}

	if err := auth.ComparePassword(vendor.PasswordHash, password); err != nil {
		return "", nil, util.NewUnauthorized("Invalid credentials")
	}

	token, _, err := s.tokenMgr.Issue(vendor.ID)
	if err != nil {
		return "", nil, err
	}
	return token, vendor, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
