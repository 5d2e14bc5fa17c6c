package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/invoice-service/internal/auth"
	"github.com/spec-kit/invoice-service/internal/config"
	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/pkg/util"
)

type mockVendorRepo struct {
	CreateFunc               func(ctx context.Context, vendor *domain.Vendor) error
	UpdateFunc               func(ctx context.Context, vendor *domain.Vendor) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Vendor, error)
	GetByUsernameFunc        func(ctx context.Context, username string) (*domain.Vendor, error)
	GetByUsernameOrEmailFunc func(ctx context.Context, username, email string) (*domain.Vendor, error)
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	return m.CreateFunc(ctx, vendor)
}
func (m *mockVendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error {
	return m.UpdateFunc(ctx, vendor)
}
func (m *mockVendorRepo) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockVendorRepo) GetByUsername(ctx context.Context, username string) (*domain.Vendor, error) {
	return m.GetByUsernameFunc(ctx, username)
}
func (m *mockVendorRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Vendor, error) {
	return m.GetByUsernameOrEmailFunc(ctx, username, email)
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
			BcryptCost:    bcrypt.MinCost,
		},
	}
}

func validInput() RegisterInput {
	return RegisterInput{
		Username:     "alice",
		Password:     "secret123",
		Email:        "alice@example.com",
		Name:         "Alice",
		Telephone:    "000-000",
		Address:      "1 Main St",
		BusinessType: "retail",
		GSTNo:        "123456789012345",
		Mobile:       "111-111",
	}
}

func TestRegisterSuccess(t *testing.T) {
	var created *domain.Vendor
	repo := &mockVendorRepo{
		GetByUsernameOrEmailFunc: func(ctx context.Context, username, email string) (*domain.Vendor, error) {
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, vendor *domain.Vendor) error {
			created = vendor
			return nil
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	id, token, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NotNil(t, created)
	assert.Equal(t, created.ID, id)
	assert.True(t, strings.HasPrefix(created.ID, "V-"), "vendor id %q", created.ID)
	assert.True(t, strings.HasPrefix(created.BusinessCode, "B-"), "business code %q", created.BusinessCode)
	assert.NotEqual(t, created.ID, created.BusinessCode)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, auth.ComparePassword(created.PasswordHash, "secret123"))

	subject, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, subject)
}

func TestRegisterValidationFailures(t *testing.T) {
	repo := &mockVendorRepo{
		GetByUsernameOrEmailFunc: func(ctx context.Context, username, email string) (*domain.Vendor, error) {
			t.Fatal("store must not be consulted on validation failure")
			return nil, nil
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		message string
	}{
		{"empty username", func(in *RegisterInput) { in.Username = "" }, "Username is required"},
		{"username with space", func(in *RegisterInput) { in.Username = "al ice" }, "Username cannot contain spaces"},
		{"short password", func(in *RegisterInput) { in.Password = "short" }, "Password must be at least 8 characters long"},
		{"long password", func(in *RegisterInput) { in.Password = strings.Repeat("a", 16) }, "Password must be less than 16 characters long"},
		{"password with space", func(in *RegisterInput) { in.Password = "secret 12" }, "Password cannot contain spaces"},
		{"short gst", func(in *RegisterInput) { in.GSTNo = "12345" }, "GST number must be exactly 15 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, _, err := svc.Register(context.Background(), in)
			require.Error(t, err)
			de := util.ToDomainError(err)
			assert.Equal(t, 400, de.HTTPStatus)
			assert.Equal(t, tt.message, de.Message)
		})
	}
}

func TestRegisterConflictOnExistingVendor(t *testing.T) {
	repo := &mockVendorRepo{
		GetByUsernameOrEmailFunc: func(ctx context.Context, username, email string) (*domain.Vendor, error) {
			return &domain.Vendor{ID: "V-existing", Username: username}, nil
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	_, _, err := svc.Register(context.Background(), validInput())
	require.Error(t, err)
	de := util.ToDomainError(err)
	assert.Equal(t, 400, de.HTTPStatus)
	assert.Equal(t, "Username or email already exists", de.Message)
}

func TestRegisterConflictOnInsertRace(t *testing.T) {
	repo := &mockVendorRepo{
		GetByUsernameOrEmailFunc: func(ctx context.Context, username, email string) (*domain.Vendor, error) {
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, vendor *domain.Vendor) error {
			return repository.ErrDuplicateKey
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	_, _, err := svc.Register(context.Background(), validInput())
	require.Error(t, err)
	de := util.ToDomainError(err)
	assert.Equal(t, 400, de.HTTPStatus)
	assert.Equal(t, "Username or email already exists", de.Message)
}

func TestRegisterConcurrentDuplicateSingleWinner(t *testing.T) {
	var mu sync.Mutex
	taken := map[string]bool{}
	repo := &mockVendorRepo{
		GetByUsernameOrEmailFunc: func(ctx context.Context, username, email string) (*domain.Vendor, error) {
			// both goroutines pass the advisory pre-check
			return nil, repository.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, vendor *domain.Vendor) error {
			mu.Lock()
			defer mu.Unlock()
			if taken[vendor.Username] {
				return repository.ErrDuplicateKey
			}
			taken[vendor.Username] = true
			return nil
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := validInput()
			_, _, err := svc.Register(context.Background(), in)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		de := util.ToDomainError(err)
		assert.Equal(t, "Username or email already exists", de.Message)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockVendorRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Vendor, error) {
			require.Equal(t, "alice", username)
			return &domain.Vendor{
				ID:           "V-abc123",
				Username:     "alice",
				Name:         "Alice",
				Email:        "alice@example.com",
				PasswordHash: hash,
			}, nil
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	token, vendor, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, vendor)
	assert.Equal(t, "V-abc123", vendor.ID)

	subject, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "V-abc123", subject)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := auth.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockVendorRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Vendor, error) {
			if username == "alice" {
				return &domain.Vendor{ID: "V-abc123", Username: "alice", PasswordHash: hash}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAuthService(testConfig(), AuthDependencies{VendorRepo: repo})

	_, _, unknownErr := svc.Login(context.Background(), "nobody", "secret123")
	_, _, wrongPwErr := svc.Login(context.Background(), "alice", "wrongpass")

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)

	unknown := util.ToDomainError(unknownErr)
	wrongPw := util.ToDomainError(wrongPwErr)
	assert.Equal(t, unknown.HTTPStatus, wrongPw.HTTPStatus)
	assert.Equal(t, unknown.Message, wrongPw.Message)
	assert.Equal(t, 401, unknown.HTTPStatus)
	assert.Equal(t, "Invalid credentials", unknown.Message)
}
