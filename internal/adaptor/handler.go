package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"commerce-admin/internal/apperr"
	"commerce-admin/internal/usecase"
	"commerce-admin/pkg/utils"
)

type Handler struct {
	Account  *AccountHandler
	Customer *CustomerHandler
	Seller   *SellerHandler
	Product  *ProductHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Account:  NewAccountHandler(service.Account, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Seller:   NewSellerHandler(service.Seller, log),
		Product:  NewProductHandler(service.Product, log),
	}
}

// translateError is the single place domain errors become HTTP status
// codes. Not-found stays deliberately opaque (no body); everything with
// a field gets the structured error body.
//
// Stock invariant mapping: a non-positive quantity at creation is bad
// input (400), running out of stock on a decrement is a state conflict
// (409).
func translateError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var dupErr *apperr.UniqueConstraintError
	var argErr *apperr.InvalidArgumentError
	var stockErr *apperr.InsufficientStockError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w)

	case errors.As(err, &dupErr):
		log.Warn(operation+" failed - duplicate", zap.String("field", dupErr.Field))
		utils.ResponseError(w, http.StatusConflict, utils.CodeUniqueViolation,
			dupErr.Field, dupErr.Field+" duplicated")

	case errors.As(err, &argErr):
		log.Warn(operation+" failed - invalid argument", zap.Error(err))
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeValidationFailed,
			argErr.Field, fmt.Sprintf("`%s` %s", argErr.Field, argErr.Message))

	case errors.As(err, &stockErr):
		log.Warn(operation+" failed - insufficient stock", zap.Error(err))
		utils.ResponseError(w, http.StatusConflict, utils.CodeInsufficientStock,
			"stockQuantity", stockErr.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}

// validationFailed writes the 400 body naming the first failing field.
func validationFailed(w http.ResponseWriter, violation *utils.FieldViolation) {
	utils.ResponseError(w, http.StatusBadRequest, utils.CodeValidationFailed,
		violation.Field, fmt.Sprintf("`%s` %s", violation.Field, violation.Message))
}

// badRequestBody rejects payloads that do not decode as JSON.
func badRequestBody(w http.ResponseWriter) {
	utils.ResponseError(w, http.StatusBadRequest, utils.CodeValidationFailed,
		"", "invalid request body")
}
