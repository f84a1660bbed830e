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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /sellers/{id}/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "id")

	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequestBody(w)
		return
	}

	if violation := utils.ValidateStruct(req); violation != nil {
		validationFailed(w, violation)
		return
	}

	productID, err := h.service.Create(r.Context(), sellerID, &req)
	if err != nil {
		translateError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, response.CreateProductResponse{ProductID: productID.String()})
}

// ListBySeller handles GET /sellers/{id}/products
func (h *ProductHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "id")

	products, err := h.service.FindBySeller(r.Context(), sellerID)
	if err != nil {
		translateError(w, h.log, err, "list products by seller")
		return
	}

	utils.ResponseSuccess(w, products)
}
