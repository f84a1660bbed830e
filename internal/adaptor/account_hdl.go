package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"commerce-admin/internal/dto/request"
	"commerce-admin/internal/dto/response"
	"commerce-admin/internal/usecase"
	"commerce-admin/pkg/utils"
)

type AccountHandler struct {
	service usecase.AccountService
	log     *zap.Logger
}

func NewAccountHandler(service usecase.AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log,
	}
}

// Find handles GET /accounts/{id}
func (h *AccountHandler) Find(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	account, err := h.service.Find(r.Context(), accountID)
	if err != nil {
		translateError(w, h.log, err, "find account")
		return
	}

	utils.ResponseSuccess(w, account)
}

// Create handles POST /accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	accountID, err := h.service.Create(r.Context(), &req)
	if err != nil {
		translateError(w, h.log, err, "create account")
		return
	}

	utils.ResponseCreated(w, response.CreateAccountResponse{AccountID: accountID.String()})
}

// Update handles PATCH /accounts/{id}
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	var req request.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	if err := h.service.Update(r.Context(), accountID, &req); err != nil {
		translateError(w, h.log, err, "update account")
		return
	}

	utils.ResponseNoContent(w)
}

// Delete handles DELETE /accounts/{id}
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), accountID); err != nil {
		translateError(w, h.log, err, "delete account")
		return
	}

	utils.ResponseNoContent(w)
}
