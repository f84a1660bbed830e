package response

import (
	"commerce-admin/internal/data/entity"
)

type CreateCustomerResponse struct {
	CustomerID string `json:"customerId"`
}

type FindCustomerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func CustomerToResponse(customer *entity.Customer) *FindCustomerResponse {
	return &FindCustomerResponse{
		Name:    customer.Name,
		Address: customer.Address,
	}
}
