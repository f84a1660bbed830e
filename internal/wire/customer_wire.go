package wire

import (
	"github.com/go-chi/chi/v5"

	"commerce-admin/internal/adaptor"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", customerHandler.Create)
		r.Get("/{id}", customerHandler.Find)
		r.Patch("/{id}", customerHandler.Update)
		r.Delete("/{id}", customerHandler.Delete)
	})
}
