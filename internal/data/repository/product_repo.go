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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var productColumns = []string{
	"id", "seller_id", "title", "description", "image", "price",
	"stock_quantity", "created_at", "updated_at", "deleted",
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log,
	}
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	product.ID = uuid.New()
	product.CreatedAt = now
	product.UpdatedAt = now

	query, args, err := psql.Insert("products").
		Columns(productColumns...).
		Values(
			product.ID,
			product.SellerID,
			product.Title,
			product.Description,
			product.Image,
			product.Price,
			product.StockQuantity,
			product.CreatedAt,
			product.UpdatedAt,
			product.Deleted,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}

	if _, err := pr.db.Exec(ctx, query, args...); err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("title", product.Title),
			zap.String("seller_id", product.SellerID.String()),
		)
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query, args, err := selectLive("products", productColumns...).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find product by ID: %w", err)
	}

	var product entity.Product
	err = pr.db.QueryRow(ctx, query, args...).Scan(
		&product.ID,
		&product.SellerID,
		&product.Title,
		&product.Description,
		&product.Image,
		&product.Price,
		&product.StockQuantity,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Deleted,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

// FindBySellerID lists a seller's live products. Products of a deleted
// seller remain reachable here; orphaning is a documented non-guarantee.
func (pr *productRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	query, args, err := selectLive("products", productColumns...).
		Where(squirrel.Eq{"seller_id": sellerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find products by seller: %w", err)
	}

	rows, err := pr.db.Query(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to find products by seller",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return nil, fmt.Errorf("find products by seller %s: %w", sellerID.String(), err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.SellerID,
			&product.Title,
			&product.Description,
			&product.Image,
			&product.Price,
			&product.StockQuantity,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.Deleted,
		)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (pr *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	query, args, err := updateLive("products").
		Set("title", product.Title).
		Set("description", product.Description).
		Set("image", product.Image).
		Set("price", product.Price).
		Set("stock_quantity", product.StockQuantity).
		Set("updated_at", product.UpdatedAt).
		Where(squirrel.Eq{"id": product.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}

	result, err := pr.db.Exec(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

func (pr *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := updateLive("products").
		Set("deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}

	result, err := pr.db.Exec(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}
