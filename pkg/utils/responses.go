package utils

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the error body.
const (
	CodeInternal          = "0"
	CodeUniqueViolation   = "1"
	CodeValidationFailed  = "2"
	CodeInsufficientStock = "3"
)

// ErrorResponse is the single error body shape used by every endpoint.
// Field is null when the error is not tied to a specific field.
type ErrorResponse struct {
	Code    string  `json:"code"`
	Field   *string `json:"field"`
	Message string  `json:"message"`
}

// ResponseJSON writes a JSON body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content, empty body
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// ResponseError writes the structured error body. An empty field name
// serialises as null.
func ResponseError(w http.ResponseWriter, status int, code, field, message string) {
	body := ErrorResponse{
		Code:    code,
		Message: message,
	}
	if field != "" {
		body.Field = &field
	}
	ResponseJSON(w, status, body)
}

// returns 404 Not Found with a deliberately empty body
func ResponseNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError, CodeInternal, "", "internal server error")
}
