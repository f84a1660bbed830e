package response

import (
	"commerce-admin/internal/data/entity"
)

type CreateProductResponse struct {
	ProductID string `json:"productId"`
}

type FindProductResponse struct {
	SellerID      string `json:"sellerId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
}

func ProductToResponse(product *entity.Product) *FindProductResponse {
	return &FindProductResponse{
		SellerID:      product.SellerID.String(),
		Title:         product.Title,
		Description:   product.Description,
		Image:         product.Image,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
	}
}
