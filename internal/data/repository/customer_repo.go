package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"commerce-admin/internal/apperr"
	"commerce-admin/internal/data/entity"
	"commerce-admin/pkg/database"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var customerColumns = []string{"id", "name", "address", "created_at", "updated_at", "deleted"}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log,
	}
}

func (cr *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now()
	customer.ID = uuid.New()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query, args, err := psql.Insert("customers").
		Columns(customerColumns...).
		Values(
			customer.ID,
			customer.Name,
			customer.Address,
			customer.CreatedAt,
			customer.UpdatedAt,
			customer.Deleted,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert customer: %w", err)
	}

	if _, err := cr.db.Exec(ctx, query, args...); err != nil {
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("name", customer.Name),
		)
		return fmt.Errorf("create customer: %w", err)
	}

	return nil
}

func (cr *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query, args, err := selectLive("customers", customerColumns...).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find customer by ID: %w", err)
	}

	var customer entity.Customer
	err = cr.db.QueryRow(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
		&customer.Deleted,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

func (cr *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customer.UpdatedAt = time.Now()

	query, args, err := updateLive("customers").
		Set("name", customer.Name).
		Set("address", customer.Address).
		Set("updated_at", customer.UpdatedAt).
		Where(squirrel.Eq{"id": customer.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update customer: %w", err)
	}

	result, err := cr.db.Exec(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", customer.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (cr *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := updateLive("customers").
		Set("deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete customer: %w", err)
	}

	result, err := cr.db.Exec(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}
