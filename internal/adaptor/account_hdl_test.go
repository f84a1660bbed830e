package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"commerce-admin/internal/apperr"
	"commerce-admin/internal/dto/request"
	"commerce-admin/internal/dto/response"
)

// stubAccountService returns canned results, for exercising the
// error-to-status translation in isolation.
type stubAccountService struct {
	findResp  *response.FindAccountResponse
	findErr   error
	createID  uuid.UUID
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubAccountService) Find(context.Context, string) (*response.FindAccountResponse, error) {
	return s.findResp, s.findErr
}

func (s *stubAccountService) Create(context.Context, *request.CreateAccountRequest) (uuid.UUID, error) {
	return s.createID, s.createErr
}

func (s *stubAccountService) Update(context.Context, string, *request.UpdateAccountRequest) error {
	return s.updateErr
}

func (s *stubAccountService) Delete(context.Context, string) error {
	return s.deleteErr
}

func newAccountRouter(t *testing.T, service *stubAccountService) *chi.Mux {
	t.Helper()

	handler := NewAccountHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Find)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

type errorBody struct {
	Code    string  `json:"code"`
	Field   *string `json:"field"`
	Message string  `json:"message"`
}

const validCreateAccountBody = `{
	"username": "alice",
	"email": "alice@example.com",
	"phoneNumber": "010-1111-2222",
	"password": "secret"
}`

func TestAccountCreateReturnsID(t *testing.T) {
	id := uuid.New()
	router := newAccountRouter(t, &stubAccountService{createID: id})

	rec := doRequest(t, router, http.MethodPost, "/accounts", validCreateAccountBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		AccountID string `json:"accountId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.AccountID)
}

func TestAccountCreateDuplicateConflictBody(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{
		createErr: &apperr.UniqueConstraintError{Field: "email"},
	})

	rec := doRequest(t, router, http.MethodPost, "/accounts", validCreateAccountBody)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1", body.Code)
	require.NotNil(t, body.Field)
	assert.Equal(t, "email", *body.Field)
	assert.Equal(t, "email duplicated", body.Message)
}

// The 400 names the first failing field in declaration order: username
// before email before phoneNumber.
func TestAccountCreateValidationFirstField(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{})

	rec := doRequest(t, router, http.MethodPost, "/accounts",
		`{"username":"","email":"not-an-email","phoneNumber":"","password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2", body.Code)
	require.NotNil(t, body.Field)
	assert.Equal(t, "username", *body.Field)
}

func TestAccountCreateInvalidEmailShape(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{})

	rec := doRequest(t, router, http.MethodPost, "/accounts",
		`{"username":"alice","email":"not-an-email","phoneNumber":"010-1111-2222","password":"secret"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Field)
	assert.Equal(t, "email", *body.Field)
}

func TestAccountCreateMalformedJSON(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{})

	rec := doRequest(t, router, http.MethodPost, "/accounts", `{"username":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2", body.Code)
	assert.Nil(t, body.Field)
}

func TestAccountFindNotFoundHasEmptyBody(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{findErr: apperr.ErrNotFound})

	rec := doRequest(t, router, http.MethodGet, "/accounts/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAccountFindSuccessBody(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{
		findResp: &response.FindAccountResponse{
			Username:    "alice",
			Email:       "alice@example.com",
			PhoneNumber: "010-1111-2222",
			Role:        "USER",
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/accounts/"+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
	// The password never leaves the service.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "deleted")
}

func TestAccountUpdateConflictOnPhoneNumber(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{
		updateErr: &apperr.UniqueConstraintError{Field: "phoneNumber"},
	})

	rec := doRequest(t, router, http.MethodPatch, "/accounts/"+uuid.NewString(),
		`{"phoneNumber":"010-1111-2222","password":"secret"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1", body.Code)
	require.NotNil(t, body.Field)
	assert.Equal(t, "phoneNumber", *body.Field)
}

func TestAccountDeleteNoContent(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{})

	rec := doRequest(t, router, http.MethodDelete, "/accounts/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAccountUnexpectedErrorIsOpaque(t *testing.T) {
	router := newAccountRouter(t, &stubAccountService{deleteErr: assert.AnError})

	rec := doRequest(t, router, http.MethodDelete, "/accounts/"+uuid.NewString(), "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0", body.Code)
	assert.Nil(t, body.Field)
}
