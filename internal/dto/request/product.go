package request

// CreateProductRequest carries no constraint on stockQuantity on
// purpose: the positive-stock invariant belongs to the product
// constructor, not the request boundary.
type CreateProductRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=255"`
	Description   string `json:"description" validate:"required"`
	Image         string `json:"image" validate:"omitempty,max=255"`
	Price         int    `json:"price" validate:"min=0"`
	StockQuantity int    `json:"stockQuantity"`
}
