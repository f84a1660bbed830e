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

type SellerHandler struct {
	service usecase.SellerService
	log     *zap.Logger
}

func NewSellerHandler(service usecase.SellerService, log *zap.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		log:     log,
	}
}

// Find handles GET /sellers/{id}
func (h *SellerHandler) Find(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "id")

	seller, err := h.service.Find(r.Context(), sellerID)
	if err != nil {
		translateError(w, h.log, err, "find seller")
		return
	}

	utils.ResponseSuccess(w, seller)
}

// Create handles POST /sellers
func (h *SellerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	sellerID, err := h.service.Create(r.Context(), &req)
	if err != nil {
		translateError(w, h.log, err, "create seller")
		return
	}

	utils.ResponseCreated(w, response.CreateSellerResponse{SellerID: sellerID.String()})
}

// Update handles PATCH /sellers/{id}
func (h *SellerHandler) Update(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "id")

	var req request.UpdateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	if err := h.service.Update(r.Context(), sellerID, &req); err != nil {
		translateError(w, h.log, err, "update seller")
		return
	}

	utils.ResponseNoContent(w)
}

// Delete handles DELETE /sellers/{id}
func (h *SellerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), sellerID); err != nil {
		translateError(w, h.log, err, "delete seller")
		return
	}

	utils.ResponseNoContent(w)
}
