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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// Find handles GET /customers/{id}
func (h *CustomerHandler) Find(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	customer, err := h.service.Find(r.Context(), customerID)
	if err != nil {
		translateError(w, h.log, err, "find customer")
		return
	}

	utils.ResponseSuccess(w, customer)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	customerID, err := h.service.Create(r.Context(), &req)
	if err != nil {
		translateError(w, h.log, err, "create customer")
		return
	}

	utils.ResponseCreated(w, response.CreateCustomerResponse{CustomerID: customerID.String()})
}

// Update handles PATCH /customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	var req request.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	if err := h.service.Update(r.Context(), customerID, &req); err != nil {
		translateError(w, h.log, err, "update customer")
		return
	}

	utils.ResponseNoContent(w)
}

// Delete handles DELETE /customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		translateError(w, h.log, err, "delete customer")
		return
	}

	utils.ResponseNoContent(w)
}
