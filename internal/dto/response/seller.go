package response

import (
	"commerce-admin/internal/data/entity"
)

type CreateSellerResponse struct {
	SellerID string `json:"sellerId"`
}

type FindSellerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func SellerToResponse(seller *entity.Seller) *FindSellerResponse {
	return &FindSellerResponse{
		Name:    seller.Name,
		Address: seller.Address,
	}
}
