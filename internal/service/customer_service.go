package service

import (
	"context"
	"errors"

	"github.com/spec-kit/invoice-service/internal/domain"
	"github.com/spec-kit/invoice-service/internal/repository"
	"github.com/spec-kit/invoice-service/pkg/util"
)

const customerIDPrefix = "C"

// CustomerService handles owner-scoped customer management.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create stores a new customer under the vendor.
func (s *CustomerService) Create(ctx context.Context, vendorID string, customer *domain.Customer) error {
	if customer.Name == "" {
		return util.NewValidationError("Customer name is required", nil)
	}
	customer.ID = util.NewPrefixedID(customerIDPrefix)
	customer.VendorID = vendorID
	return s.customers.Create(ctx, customer)
}

// Update modifies a customer owned by the vendor.
func (s *CustomerService) Update(ctx context.Context, vendorID, id string, customer *domain.Customer) (*domain.Customer, error) {
	existing, err := s.customers.GetByID(ctx, vendorID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("customer", nil)
		}
		return nil, err
	}

	if customer.Name != "" {
		existing.Name = customer.Name
	}
	existing.Email = customer.Email
	existing.Phone = customer.Phone
	existing.Address = customer.Address

	if err := s.customers.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a customer owned by the vendor.
func (s *CustomerService) Delete(ctx context.Context, vendorID, id string) error {
	if err := s.customers.Delete(ctx, vendorID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("customer", nil)
		}
		return err
	}
	return nil
}

// List returns all customers of the vendor.
func (s *CustomerService) List(ctx context.Context, vendorID string) ([]domain.Customer, error) {
	return s.customers.ListByVendor(ctx, vendorID)
}
