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

type SellerService interface {
	Find(ctx context.Context, sellerID string) (*response.FindSellerResponse, error)
	Create(ctx context.Context, req *request.CreateSellerRequest) (uuid.UUID, error)
	Update(ctx context.Context, sellerID string, req *request.UpdateSellerRequest) error
	Delete(ctx context.Context, sellerID string) error
}

type sellerService struct {
	sellerRepo repository.SellerRepository
	log        *zap.Logger
}

func NewSellerService(sellerRepo repository.SellerRepository, log *zap.Logger) SellerService {
	return &sellerService{
		sellerRepo: sellerRepo,
		log:        log,
	}
}

func (ss *sellerService) Find(ctx context.Context, sellerID string) (*response.FindSellerResponse, error) {
	id, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, fmt.Errorf("seller %q: %w", sellerID, apperr.ErrNotFound)
	}

	seller, err := ss.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find seller: %w", err)
	}
	if seller == nil {
		return nil, fmt.Errorf("seller %s: %w", sellerID, apperr.ErrNotFound)
	}

	return response.SellerToResponse(seller), nil
}

func (ss *sellerService) Create(ctx context.Context, req *request.CreateSellerRequest) (uuid.UUID, error) {
	seller := entity.NewSeller(req.Name, req.Address)

	if err := ss.sellerRepo.Create(ctx, seller); err != nil {
		ss.log.Error("Failed to create seller", zap.Error(err), zap.String("name", req.Name))
		return uuid.Nil, fmt.Errorf("create seller: %w", err)
	}

	ss.log.Info("Seller created", zap.String("seller_id", seller.ID.String()))
	return seller.ID, nil
}

// Update applies only the fields the caller supplied; nil fields keep
// their prior values.
func (ss *sellerService) Update(ctx context.Context, sellerID string, req *request.UpdateSellerRequest) error {
	id, err := uuid.Parse(sellerID)
	if err != nil {
		return fmt.Errorf("seller %q: %w", sellerID, apperr.ErrNotFound)
	}

	seller, err := ss.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find seller: %w", err)
	}
	if seller == nil {
		return fmt.Errorf("seller %s: %w", sellerID, apperr.ErrNotFound)
	}

	if req.Name != nil {
		seller.Name = *req.Name
	}
	if req.Address != nil {
		seller.Address = *req.Address
	}

	if err := ss.sellerRepo.Update(ctx, seller); err != nil {
		ss.log.Error("Failed to update seller", zap.Error(err), zap.String("seller_id", sellerID))
		return fmt.Errorf("update seller: %w", err)
	}

	return nil
}

// Delete removes the seller from every read path. Its products are left
// as they are: there is no cascade and no nullify of the reference.
func (ss *sellerService) Delete(ctx context.Context, sellerID string) error {
	id, err := uuid.Parse(sellerID)
	if err != nil {
		return fmt.Errorf("seller %q: %w", sellerID, apperr.ErrNotFound)
	}

	seller, err := ss.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find seller: %w", err)
	}
	if seller == nil {
		return fmt.Errorf("seller %s: %w", sellerID, apperr.ErrNotFound)
	}

	if err := ss.sellerRepo.Delete(ctx, id); err != nil {
		ss.log.Error("Failed to delete seller", zap.Error(err), zap.String("seller_id", sellerID))
		return fmt.Errorf("delete seller: %w", err)
	}

	ss.log.Info("Seller deleted", zap.String("seller_id", id.String()))
	return nil
}
