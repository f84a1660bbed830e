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

type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var sellerColumns = []string{"id", "name", "address", "created_at", "updated_at", "deleted"}

type sellerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSellerRepository(db database.PgxIface, log *zap.Logger) SellerRepository {
	return &sellerRepository{
		db:  db,
		log: log,
	}
}

func (sr *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	now := time.Now()
	seller.ID = uuid.New()
	seller.CreatedAt = now
	seller.UpdatedAt = now

	query, args, err := psql.Insert("sellers").
		Columns(sellerColumns...).
		Values(
			seller.ID,
			seller.Name,
			seller.Address,
			seller.CreatedAt,
			seller.UpdatedAt,
			seller.Deleted,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert seller: %w", err)
	}

	if _, err := sr.db.Exec(ctx, query, args...); err != nil {
		sr.log.Error("Failed to create seller",
			zap.Error(err),
			zap.String("name", seller.Name),
		)
		return fmt.Errorf("create seller: %w", err)
	}

	return nil
}

func (sr *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	query, args, err := selectLive("sellers", sellerColumns...).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find seller by ID: %w", err)
	}

	var seller entity.Seller
	err = sr.db.QueryRow(ctx, query, args...).Scan(
		&seller.ID,
		&seller.Name,
		&seller.Address,
		&seller.CreatedAt,
		&seller.UpdatedAt,
		&seller.Deleted,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find seller by ID",
			zap.Error(err),
			zap.String("seller_id", id.String()),
		)
		return nil, fmt.Errorf("find seller by ID %s: %w", id.String(), err)
	}

	return &seller, nil
}

func (sr *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	seller.UpdatedAt = time.Now()

	query, args, err := updateLive("sellers").
		Set("name", seller.Name).
		Set("address", seller.Address).
		Set("updated_at", seller.UpdatedAt).
		Where(squirrel.Eq{"id": seller.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update seller: %w", err)
	}

	result, err := sr.db.Exec(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to update seller",
			zap.Error(err),
			zap.String("seller_id", seller.ID.String()),
		)
		return fmt.Errorf("update seller %s: %w", seller.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seller %s: %w", seller.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

// Delete soft-deletes the seller only. Its products keep their seller
// reference; there is deliberately no cascade or nullify here.
func (sr *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := updateLive("sellers").
		Set("deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete seller: %w", err)
	}

	result, err := sr.db.Exec(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to delete seller",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete seller %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seller %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}
