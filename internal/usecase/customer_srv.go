package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"commerce-admin/internal/apperr"
	"commerce-admin/internal/data/entity"
	"commerce-admin/internal/data/repository"
	"commerce-admin/internal/dto/request"
	"commerce-admin/internal/dto/response"
)

type CustomerService interface {
	Find(ctx context.Context, customerID string) (*response.FindCustomerResponse, error)
	Create(ctx context.Context, req *request.CreateCustomerRequest) (uuid.UUID, error)
	Update(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) error
	Delete(ctx context.Context, customerID string) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	log          *zap.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		log:          log,
	}
}

func (cs *customerService) Find(ctx context.Context, customerID string) (*response.FindCustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("customer %q: %w", customerID, apperr.ErrNotFound)
	}

	customer, err := cs.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, apperr.ErrNotFound)
	}

	return response.CustomerToResponse(customer), nil
}

func (cs *customerService) Create(ctx context.Context, req *request.CreateCustomerRequest) (uuid.UUID, error) {
	customer := entity.NewCustomer(req.Name, req.Address)

	if err := cs.customerRepo.Create(ctx, customer); err != nil {
		cs.log.Error("Failed to create customer", zap.Error(err), zap.String("name", req.Name))
		return uuid.Nil, fmt.Errorf("create customer: %w", err)
	}

	cs.log.Info("Customer created", zap.String("customer_id", customer.ID.String()))
	return customer.ID, nil
}

// Update applies only the fields the caller supplied; nil fields keep
// their prior values.
func (cs *customerService) Update(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("customer %q: %w", customerID, apperr.ErrNotFound)
	}

	customer, err := cs.customerRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer %s: %w", customerID, apperr.ErrNotFound)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := cs.customerRepo.Update(ctx, customer); err != nil {
		cs.log.Error("Failed to update customer", zap.Error(err), zap.String("customer_id", customerID))
		return fmt.Errorf("update customer: %w", err)
	}

	return nil
}

func (cs *customerService) Delete(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("customer %q: %w", customerID, apperr.ErrNotFound)
	}

	customer, err := cs.customerRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer %s: %w", customerID, apperr.ErrNotFound)
	}

	if err := cs.customerRepo.Delete(ctx, id); err != nil {
		cs.log.Error("Failed to delete customer", zap.Error(err), zap.String("customer_id", customerID))
		return fmt.Errorf("delete customer: %w", err)
	}

	cs.log.Info("Customer deleted", zap.String("customer_id", id.String()))
	return nil
}
