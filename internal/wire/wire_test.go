package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commerce-admin/internal/data/repository"
)

// newTestApp wires the full router. The repositories never see a
// request in these tests, so no pool is attached.
func newTestApp(t *testing.T) *App {
	t.Helper()

	logger := zap.NewNop()
	return Wiring(repository.NewRepository(nil, logger), logger)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

// A preflight request is answered by the middleware before any handler
// runs.
func TestPreflightShortCircuits(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/accounts", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSHeadersOnRoutedRequest(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
