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

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByUniqueFields(ctx context.Context, username, email, phoneNumber string) (*entity.Account, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var accountColumns = []string{
	"id", "username", "email", "phone_number", "password", "role",
	"created_at", "updated_at", "deleted",
}

// accountConstraintFields maps the live-row unique indexes back to the
// API field names they guard.
var accountConstraintFields = map[string]string{
	"accounts_username_live_key":     "username",
	"accounts_email_live_key":        "email",
	"accounts_phone_number_live_key": "phoneNumber",
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new account, assigning identity and timestamps.
func (ar *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	now := time.Now()
	account.ID = uuid.New()
	account.CreatedAt = now
	account.UpdatedAt = now

	query, args, err := psql.Insert("accounts").
		Columns(accountColumns...).
		Values(
			account.ID,
			account.Username,
			account.Email,
			account.PhoneNumber,
			account.Password,
			account.Role,
			account.CreatedAt,
			account.UpdatedAt,
			account.Deleted,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert account: %w", err)
	}

	if _, err := ar.db.Exec(ctx, query, args...); err != nil {
		if dup := uniqueViolation(err, accountConstraintFields); dup != nil {
			return dup
		}
		ar.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("email", account.Email),
			zap.String("username", account.Username),
		)
		return fmt.Errorf("create account %s: %w", account.Email, err)
	}

	return nil
}

func (ar *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query, args, err := selectLive("accounts", accountColumns...).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find account by ID: %w", err)
	}

	account, err := ar.scanAccount(ar.db.QueryRow(ctx, query, args...))
	if err != nil {
		ar.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find account by ID %s: %w", id.String(), err)
	}

	return account, nil
}

// FindByUniqueFields returns any live account colliding with one of the
// three unique candidate fields. Used as the create-time duplicate
// pre-check.
func (ar *accountRepository) FindByUniqueFields(ctx context.Context, username, email, phoneNumber string) (*entity.Account, error) {
	query, args, err := selectLive("accounts", accountColumns...).
		Where(squirrel.Or{
			squirrel.Eq{"username": username},
			squirrel.Eq{"email": email},
			squirrel.Eq{"phone_number": phoneNumber},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find account by unique fields: %w", err)
	}

	account, err := ar.scanAccount(ar.db.QueryRow(ctx, query, args...))
	if err != nil {
		ar.log.Error("Failed to find account by unique fields",
			zap.Error(err),
			zap.String("email", email),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find account by unique fields: %w", err)
	}

	return account, nil
}

func (ar *accountRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Account, error) {
	query, args, err := selectLive("accounts", accountColumns...).
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find account by phone number: %w", err)
	}

	account, err := ar.scanAccount(ar.db.QueryRow(ctx, query, args...))
	if err != nil {
		ar.log.Error("Failed to find account by phone number", zap.Error(err))
		return nil, fmt.Errorf("find account by phone number: %w", err)
	}

	return account, nil
}

func (ar *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	account.UpdatedAt = time.Now()

	query, args, err := updateLive("accounts").
		Set("username", account.Username).
		Set("email", account.Email).
		Set("phone_number", account.PhoneNumber).
		Set("password", account.Password).
		Set("role", account.Role).
		Set("updated_at", account.UpdatedAt).
		Where(squirrel.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update account: %w", err)
	}

	result, err := ar.db.Exec(ctx, query, args...)
	if err != nil {
		if dup := uniqueViolation(err, accountConstraintFields); dup != nil {
			return dup
		}
		ar.log.Error("Failed to update account",
			zap.Error(err),
			zap.String("account_id", account.ID.String()),
		)
		return fmt.Errorf("update account %s: %w", account.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.ID.String(), apperr.ErrNotFound)
	}

	return nil
}

// Delete marks the account deleted; the row is never erased.
func (ar *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := updateLive("accounts").
		Set("deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete account: %w", err)
	}

	result, err := ar.db.Exec(ctx, query, args...)
	if err != nil {
		ar.log.Error("Failed to delete account",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete account %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", id.String(), apperr.ErrNotFound)
	}

	return nil
}

func (ar *accountRepository) scanAccount(row pgx.Row) (*entity.Account, error) {
	var account entity.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PhoneNumber,
		&account.Password,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.Deleted,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}
