package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/clothescatalog/internal/common"
	"github.com/dmitrijs2005/clothescatalog/internal/server/validation"
	"github.com/go-chi/chi/v5/middleware"
)

const msgInternal = "internal error"

// HTTPError is an error with a status code and a client-facing message.
type HTTPError struct {
	cause   error
	Code    int
	Message string
	Details []validation.FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

func newHTTPError(code int, message string, cause error) *HTTPError {
	return &HTTPError{cause: cause, Code: code, Message: message}
}

func errBadRequest(message string, cause error) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, cause)
}

type errorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// toHTTPError maps service errors onto responses. Anything unrecognised
// becomes a 500 with a generic message.
func toHTTPError(err error) *HTTPError {
	var (
		httpErr *HTTPError
		verrs   validation.Errors
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &verrs):
		e := newHTTPError(http.StatusUnprocessableEntity, common.ErrorValidation.Error(), err)
		e.Details = verrs
		return e
	case errors.Is(err, common.ErrorValidation):
		return newHTTPError(http.StatusUnprocessableEntity, common.ErrorValidation.Error(), err)
	case errors.Is(err, common.ErrNotAuthenticated):
		return newHTTPError(http.StatusUnauthorized, common.ErrNotAuthenticated.Error(), err)
	case errors.Is(err, common.ErrTokenExpired):
		return newHTTPError(http.StatusUnauthorized, common.ErrTokenExpired.Error(), err)
	case errors.Is(err, common.ErrInvalidToken):
		return newHTTPError(http.StatusUnauthorized, common.ErrInvalidToken.Error(), err)
	case errors.Is(err, common.ErrForbidden):
		return newHTTPError(http.StatusForbidden, common.ErrForbidden.Error(), err)
	case errors.Is(err, common.ErrEmailAlreadyRegistered):
		return newHTTPError(http.StatusConflict, common.ErrEmailAlreadyRegistered.Error(), err)
	default:
		return newHTTPError(http.StatusInternalServerError, msgInternal, err)
	}
}

// AppHandler is an http handler that reports failures by returning them.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// makeHandler adapts an AppHandler to http.HandlerFunc, turning a returned
// error into a JSON error body. Server errors are logged with the cause.
func (h *Handler) makeHandler(fn AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		e := toHTTPError(err)
		ctx := r.Context()
		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", e.Code,
			"request_id", middleware.GetReqID(ctx),
		}
		if e.Code >= http.StatusInternalServerError {
			h.logger.Error(ctx, "request failed", append(attrs, "error", err)...)
		} else {
			h.logger.Debug(ctx, "request rejected", append(attrs, "error", err)...)
		}

		writeJSON(w, e.Code, errorResponse{Error: e.Message, Details: e.Details})
	}
}
