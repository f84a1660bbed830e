package entity

import (
	"github.com/google/uuid"

	"commerce-admin/internal/apperr"
)

// Product belongs to exactly one seller. Deleting a seller does NOT
// touch its products; orphaned references are a documented non-guarantee.
type Product struct {
	Base
	SellerID      uuid.UUID `db:"seller_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Image         string    `db:"image"`
	Price         int       `db:"price"`
	StockQuantity int       `db:"stock_quantity"`
}

// NewProduct validates the stock invariant at construction, before the
// product ever reaches the store.
func NewProduct(sellerID uuid.UUID, title, description, image string, price, stockQuantity int) (*Product, error) {
	if stockQuantity <= 0 {
		return nil, &apperr.InvalidArgumentError{
			Field:   "stockQuantity",
			Message: "must be bigger than 0",
		}
	}

	return &Product{
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		Image:         image,
		Price:         price,
		StockQuantity: stockQuantity,
	}, nil
}

// DecreaseQuantity decrements the stock, refusing to go below zero.
// On failure the quantity is left unchanged.
func (p *Product) DecreaseQuantity(quantity int) error {
	if p.StockQuantity-quantity < 0 {
		return &apperr.InsufficientStockError{
			Available: p.StockQuantity,
			Requested: quantity,
		}
	}

	p.StockQuantity -= quantity
	return nil
}
