package response

import (
	"commerce-admin/internal/data/entity"
)

type CreateAccountResponse struct {
	AccountID string `json:"accountId"`
}

type FindAccountResponse struct {
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber"`
	Role        entity.AccountRole `json:"role"`
}

func AccountToResponse(account *entity.Account) *FindAccountResponse {
	return &FindAccountResponse{
		Username:    account.Username,
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		Role:        account.Role,
	}
}
