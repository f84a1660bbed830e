package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"commerce-admin/internal/apperr"
	"commerce-admin/internal/data/entity"
	"commerce-admin/internal/data/repository"
	"commerce-admin/internal/dto/request"
	"commerce-admin/internal/dto/response"
)

type AccountService interface {
	Find(ctx context.Context, accountID string) (*response.FindAccountResponse, error)
	Create(ctx context.Context, req *request.CreateAccountRequest) (uuid.UUID, error)
	Update(ctx context.Context, accountID string, req *request.UpdateAccountRequest) error
	Delete(ctx context.Context, accountID string) error
}

type accountService struct {
	accountRepo repository.AccountRepository
	log         *zap.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, log *zap.Logger) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		log:         log,
	}
}

func (as *accountService) Find(ctx context.Context, accountID string) (*response.FindAccountResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, fmt.Errorf("account %q: %w", accountID, apperr.ErrNotFound)
	}

	account, err := as.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, apperr.ErrNotFound)
	}

	return response.AccountToResponse(account), nil
}

// Create inserts a new account after the duplicate pre-check over the
// three unique candidate fields. The pre-check is a fast path for a
// friendly error; the store's unique indexes remain the authority, and a
// lost race comes back from the repository as the same structured error.
func (as *accountService) Create(ctx context.Context, req *request.CreateAccountRequest) (uuid.UUID, error) {
	dup, err := as.accountRepo.FindByUniqueFields(ctx, req.Username, req.Email, req.PhoneNumber)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check duplicate account: %w", err)
	}
	if dup != nil {
		// When several fields collide at once, report username over
		// email over phoneNumber.
		field := "phoneNumber"
		switch {
		case dup.Username == req.Username:
			field = "username"
		case dup.Email == req.Email:
			field = "email"
		}
		as.log.Warn("Duplicate account rejected",
			zap.String("field", field),
			zap.String("username", req.Username),
		)
		return uuid.Nil, &apperr.UniqueConstraintError{Field: field}
	}

	account := entity.NewAccount(req.Username, req.Email, req.PhoneNumber, req.Password)

	if err := as.accountRepo.Create(ctx, account); err != nil {
		var dupErr *apperr.UniqueConstraintError
		if errors.As(err, &dupErr) {
			return uuid.Nil, err
		}
		as.log.Error("Failed to create account", zap.Error(err), zap.String("email", req.Email))
		return uuid.Nil, fmt.Errorf("create account: %w", err)
	}

	as.log.Info("Account created",
		zap.String("account_id", account.ID.String()),
		zap.String("username", account.Username),
	)
	return account.ID, nil
}

func (as *accountService) Update(ctx context.Context, accountID string, req *request.UpdateAccountRequest) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return fmt.Errorf("account %q: %w", accountID, apperr.ErrNotFound)
	}

	account, err := as.accountRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return fmt.Errorf("account %s: %w", accountID, apperr.ErrNotFound)
	}

	// Changing the phone number requires it to be free among other live
	// accounts; keeping the current number is always allowed.
	if req.PhoneNumber != account.PhoneNumber {
		other, err := as.accountRepo.FindByPhoneNumber(ctx, req.PhoneNumber)
		if err != nil {
			return fmt.Errorf("check duplicate phone number: %w", err)
		}
		if other != nil && other.ID != account.ID {
			as.log.Warn("Duplicate phone number rejected",
				zap.String("account_id", accountID),
			)
			return &apperr.UniqueConstraintError{Field: "phoneNumber"}
		}
	}

	account.PhoneNumber = req.PhoneNumber
	account.Password = req.Password

	if err := as.accountRepo.Update(ctx, account); err != nil {
		var dupErr *apperr.UniqueConstraintError
		if errors.As(err, &dupErr) {
			return err
		}
		as.log.Error("Failed to update account", zap.Error(err), zap.String("account_id", accountID))
		return fmt.Errorf("update account: %w", err)
	}

	return nil
}

// Delete is not idempotent: a second delete of the same id fails with
// not found, because the first one removed the row from every read path.
func (as *accountService) Delete(ctx context.Context, accountID string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return fmt.Errorf("account %q: %w", accountID, apperr.ErrNotFound)
	}

	account, err := as.accountRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return fmt.Errorf("account %s: %w", accountID, apperr.ErrNotFound)
	}

	if err := as.accountRepo.Delete(ctx, id); err != nil {
		as.log.Error("Failed to delete account", zap.Error(err), zap.String("account_id", accountID))
		return fmt.Errorf("delete account: %w", err)
	}

	as.log.Info("Account deleted",
		zap.String("account_id", id.String()),
		zap.String("email", account.Email),
	)
	return nil
}
