package wire

import (
	"github.com/go-chi/chi/v5"

	"commerce-admin/internal/adaptor"
)

// wireSeller mounts the seller routes and the product routes nested
// under a seller id.
func wireSeller(r chi.Router, sellerHandler *adaptor.SellerHandler, productHandler *adaptor.ProductHandler) {
	r.Route("/sellers", func(r chi.Router) {
		r.Post("/", sellerHandler.Create)
		r.Get("/{id}", sellerHandler.Find)
		r.Patch("/{id}", sellerHandler.Update)
		r.Delete("/{id}", sellerHandler.Delete)

		r.Route("/{id}/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.ListBySeller)
		})
	})
}
