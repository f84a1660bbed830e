package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"commerce-admin/internal/adaptor"
	"commerce-admin/internal/data/repository"
	"commerce-admin/internal/usecase"
	"commerce-admin/pkg/middleware"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initialises services, handlers and the router.
func Wiring(repo *repository.Repository, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAccount(r, handler.Account)
	wireCustomer(r, handler.Customer)
	wireSeller(r, handler.Seller, handler.Product)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
