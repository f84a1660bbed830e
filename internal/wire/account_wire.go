package wire

import (
	"github.com/go-chi/chi/v5"

	"commerce-admin/internal/adaptor"
)

func wireAccount(r chi.Router, accountHandler *adaptor.AccountHandler) {
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", accountHandler.Create)
		r.Get("/{id}", accountHandler.Find)
		r.Patch("/{id}", accountHandler.Update)
		r.Delete("/{id}", accountHandler.Delete)
	})
}
