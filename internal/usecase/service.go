package usecase

import (
	"commerce-admin/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Account  AccountService
	Customer CustomerService
	Seller   SellerService
	Product  ProductService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Account:  NewAccountService(repo.Account, log),
		Customer: NewCustomerService(repo.Customer, log),
		Seller:   NewSellerService(repo.Seller, log),
		Product:  NewProductService(repo.Product, repo.Seller, log),
	}
}
