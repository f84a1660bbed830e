package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"commerce-admin/internal/apperr"
	"commerce-admin/internal/data/entity"
)

// In-memory repository doubles. They reproduce the store's visible
// behaviour: live-row uniqueness for accounts, soft-deleted rows absent
// from every read, zero-rows-affected on writes to dead rows.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	for _, existing := range f.accounts {
		if existing.Deleted {
			continue
		}
		switch {
		case existing.Username == account.Username:
			return &apperr.UniqueConstraintError{Field: "username"}
		case existing.Email == account.Email:
			return &apperr.UniqueConstraintError{Field: "email"}
		case existing.PhoneNumber == account.PhoneNumber:
			return &apperr.UniqueConstraintError{Field: "phoneNumber"}
		}
	}

	now := time.Now()
	account.ID = uuid.New()
	account.CreatedAt = now
	account.UpdatedAt = now

	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := f.accounts[id]
	if !ok || account.Deleted {
		return nil, nil
	}
	found := *account
	return &found, nil
}

func (f *fakeAccountRepo) FindByUniqueFields(_ context.Context, username, email, phoneNumber string) (*entity.Account, error) {
	for _, account := range f.accounts {
		if account.Deleted {
			continue
		}
		if account.Username == username || account.Email == email || account.PhoneNumber == phoneNumber {
			found := *account
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByPhoneNumber(_ context.Context, phoneNumber string) (*entity.Account, error) {
	for _, account := range f.accounts {
		if !account.Deleted && account.PhoneNumber == phoneNumber {
			found := *account
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	existing, ok := f.accounts[account.ID]
	if !ok || existing.Deleted {
		return fmt.Errorf("account %s: %w", account.ID.String(), apperr.ErrNotFound)
	}

	account.UpdatedAt = time.Now()
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	existing, ok := f.accounts[id]
	if !ok || existing.Deleted {
		return fmt.Errorf("account %s: %w", id.String(), apperr.ErrNotFound)
	}
	existing.Deleted = true
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	now := time.Now()
	customer.ID = uuid.New()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	stored := *customer
	f.customers[customer.ID] = &stored
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := f.customers[id]
	if !ok || customer.Deleted {
		return nil, nil
	}
	found := *customer
	return &found, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	existing, ok := f.customers[customer.ID]
	if !ok || existing.Deleted {
		return fmt.Errorf("customer %s: %w", customer.ID.String(), apperr.ErrNotFound)
	}

	customer.UpdatedAt = time.Now()
	stored := *customer
	f.customers[customer.ID] = &stored
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	existing, ok := f.customers[id]
	if !ok || existing.Deleted {
		return fmt.Errorf("customer %s: %w", id.String(), apperr.ErrNotFound)
	}
	existing.Deleted = true
	return nil
}

type fakeSellerRepo struct {
	sellers map[uuid.UUID]*entity.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: make(map[uuid.UUID]*entity.Seller)}
}

func (f *fakeSellerRepo) Create(_ context.Context, seller *entity.Seller) error {
	now := time.Now()
	seller.ID = uuid.New()
	seller.CreatedAt = now
	seller.UpdatedAt = now

	stored := *seller
	f.sellers[seller.ID] = &stored
	return nil
}

func (f *fakeSellerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, ok := f.sellers[id]
	if !ok || seller.Deleted {
		return nil, nil
	}
	found := *seller
	return &found, nil
}

func (f *fakeSellerRepo) Update(_ context.Context, seller *entity.Seller) error {
	existing, ok := f.sellers[seller.ID]
	if !ok || existing.Deleted {
		return fmt.Errorf("seller %s: %w", seller.ID.String(), apperr.ErrNotFound)
	}

	seller.UpdatedAt = time.Now()
	stored := *seller
	f.sellers[seller.ID] = &stored
	return nil
}

func (f *fakeSellerRepo) Delete(_ context.Context, id uuid.UUID) error {
	existing, ok := f.sellers[id]
	if !ok || existing.Deleted {
		return fmt.Errorf("seller %s: %w", id.String(), apperr.ErrNotFound)
	}
	existing.Deleted = true
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	now := time.Now()
	product.ID = uuid.New()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok || product.Deleted {
		return nil, nil
	}
	found := *product
	return &found, nil
}

func (f *fakeProductRepo) FindBySellerID(_ context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, product := range f.products {
		if !product.Deleted && product.SellerID == sellerID {
			found := *product
			products = append(products, &found)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	existing, ok := f.products[product.ID]
	if !ok || existing.Deleted {
		return fmt.Errorf("product %s: %w", product.ID.String(), apperr.ErrNotFound)
	}

	product.UpdatedAt = time.Now()
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	existing, ok := f.products[id]
	if !ok || existing.Deleted {
		return fmt.Errorf("product %s: %w", id.String(), apperr.ErrNotFound)
	}
	existing.Deleted = true
	return nil
}
