package repository

import (
	"commerce-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Account  AccountRepository
	Customer CustomerRepository
	Seller   SellerRepository
	Product  ProductRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account:  NewAccountRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Seller:   NewSellerRepository(db, log),
		Product:  NewProductRepository(db, log),
	}
}
