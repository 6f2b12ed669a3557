package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/namegen/pkg/namegen"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// httpError is an error with a fixed status and code.
type httpError struct {
	status int
	code   string
	msg    string
}

func (e httpError) Error() string { return e.msg }

var (
	errNotFound         = httpError{http.StatusNotFound, "not_found", "resource not found"}
	errMethodNotAllowed = httpError{http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed"}
	errRateLimited      = httpError{http.StatusTooManyRequests, "rate_limited", "too many requests"}
)

func badRequest(field, msg string) error {
	return badRequestError{field: field, msg: msg}
}

type badRequestError struct {
	field string
	msg   string
}

func (e badRequestError) Error() string { return e.field + ": " + e.msg }

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

func writeError(w http.ResponseWriter, _ *http.Request, err error) {
	status, detail := classify(err)
	writeJSON(w, status, Envelope{Error: detail})
}

func classify(err error) (int, *ErrorDetail) {
	var (
		syn *namegen.SyntaxError
		bad badRequestError
		he  httpError
	)
	switch {
	case errors.As(err, &syn):
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "invalid_pattern",
			Message: syn.Error(),
			Details: map[string][]string{"pattern": {syn.Kind.String()}},
		}
	case errors.As(err, &bad):
		return http.StatusBadRequest, &ErrorDetail{
			Code:    "bad_request",
			Message: bad.Error(),
			Details: map[string][]string{bad.field: {bad.msg}},
		}
	case errors.Is(err, namegen.ErrUnknownPreset):
		return http.StatusNotFound, &ErrorDetail{Code: "unknown_preset", Message: err.Error()}
	case errors.Is(err, namegen.ErrExhausted):
		return http.StatusConflict, &ErrorDetail{Code: "exhausted", Message: err.Error()}
	case errors.As(err, &he):
		return he.status, &ErrorDetail{Code: he.code, Message: he.msg}
	default:
		return http.StatusInternalServerError, &ErrorDetail{
			Code:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}
