// Package httperr maps the error taxonomy to HTTP status codes in one place.
// Handlers wrap failures with a kind and a client-safe message; the underlying
// cause is logged server-side and never echoed in the response body.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jxsus-1/api-supermarket/middleware"
	"github.com/jxsus-1/api-supermarket/storage"
)

var (
	ErrValidation      = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("missing credentials")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("forbidden")
	ErrUpstream        = errors.New("upstream failure")
)

// Public carries a client-facing message alongside the taxonomy kind and the
// internal cause.
type Public struct {
	Kind    error
	Message string
	Cause   error
}

// New wraps cause with a kind and a message safe to return to the client.
func New(kind error, message string, cause error) *Public {
	return &Public{Kind: kind, Message: message, Cause: cause}
}

func (e *Public) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Public) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// Respond translates err to a status code and JSON body and aborts the
// request. Server-side failures are logged with the full cause; the body only
// ever contains the taxonomy's generic message or the handler's Public one.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, storage.ErrInvalidID):
		status, message = http.StatusBadRequest, "invalid input"
	case errors.Is(err, ErrNotFound), errors.Is(err, storage.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, ErrUnauthenticated):
		status, message = http.StatusUnauthorized, "authentication required"
	case errors.Is(err, ErrInvalidToken):
		status, message = http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, ErrForbidden):
		status, message = http.StatusForbidden, "forbidden"
	case errors.Is(err, ErrUpstream):
		status, message = http.StatusInternalServerError, "upstream service failure"
	}

	var public *Public
	if errors.As(err, &public) && public.Message != "" {
		message = public.Message
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
