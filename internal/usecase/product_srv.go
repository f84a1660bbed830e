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

type ProductService interface {
	Find(ctx context.Context, productID string) (*response.FindProductResponse, error)
	FindBySeller(ctx context.Context, sellerID string) ([]*response.FindProductResponse, error)
	Create(ctx context.Context, sellerID string, req *request.CreateProductRequest) (uuid.UUID, error)
	DecreaseQuantity(ctx context.Context, productID string, quantity int) error
	Delete(ctx context.Context, productID string) error
}

type productService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	log         *zap.Logger
}

func NewProductService(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	log *zap.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		log:         log,
	}
}

func (ps *productService) Find(ctx context.Context, productID string) (*response.FindProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", productID, apperr.ErrNotFound)
	}

	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, apperr.ErrNotFound)
	}

	return response.ProductToResponse(product), nil
}

// FindBySeller lists a seller's live products. The seller itself is not
// required to be live: products of a deleted seller stay reachable.
func (ps *productService) FindBySeller(ctx context.Context, sellerID string) ([]*response.FindProductResponse, error) {
	id, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, fmt.Errorf("seller %q: %w", sellerID, apperr.ErrNotFound)
	}

	products, err := ps.productRepo.FindBySellerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find products by seller: %w", err)
	}

	responses := make([]*response.FindProductResponse, len(products))
	for i, product := range products {
		responses[i] = response.ProductToResponse(product)
	}

	return responses, nil
}

// Create inserts a product under an existing live seller. The positive
// stock invariant is enforced by the product constructor before
// anything is persisted.
func (ps *productService) Create(ctx context.Context, sellerID string, req *request.CreateProductRequest) (uuid.UUID, error) {
	id, err := uuid.Parse(sellerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seller %q: %w", sellerID, apperr.ErrNotFound)
	}

	seller, err := ps.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("find seller: %w", err)
	}
	if seller == nil {
		return uuid.Nil, fmt.Errorf("seller %s: %w", sellerID, apperr.ErrNotFound)
	}

	product, err := entity.NewProduct(seller.ID, req.Title, req.Description, req.Image, req.Price, req.StockQuantity)
	if err != nil {
		return uuid.Nil, err
	}

	if err := ps.productRepo.Create(ctx, product); err != nil {
		ps.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("seller_id", sellerID),
			zap.String("title", req.Title),
		)
		return uuid.Nil, fmt.Errorf("create product: %w", err)
	}

	ps.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", seller.ID.String()),
	)
	return product.ID, nil
}

// DecreaseQuantity decrements stock for a single call. A failed
// decrement leaves the stored quantity untouched; there is no cross-call
// atomicity beyond what the store gives a single update.
func (ps *productService) DecreaseQuantity(ctx context.Context, productID string, quantity int) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("product %q: %w", productID, apperr.ErrNotFound)
	}

	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", productID, apperr.ErrNotFound)
	}

	if err := product.DecreaseQuantity(quantity); err != nil {
		return err
	}

	if err := ps.productRepo.Update(ctx, product); err != nil {
		ps.log.Error("Failed to persist stock decrement",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (ps *productService) Delete(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("product %q: %w", productID, apperr.ErrNotFound)
	}

	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", productID, apperr.ErrNotFound)
	}

	if err := ps.productRepo.Delete(ctx, id); err != nil {
		ps.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("delete product: %w", err)
	}

	ps.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
