// Package httperr defines the error taxonomy shared by usecases and HTTP
// handlers, and the single responder that maps errors to status codes.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an error into one of the HTTP-mappable categories.
type Kind int

const (
	// BadRequest covers invalid client input and business-rule violations.
	BadRequest Kind = iota
	// Unauthorized covers missing or invalid credentials, and actions the
	// requester is not allowed to perform where that is surfaced as 401.
	Unauthorized
	// Forbidden covers authenticated requesters lacking the required role.
	Forbidden
	// NotFound covers missing resources, including resources whose existence
	// is deliberately hidden from the requester.
	NotFound
	// Internal covers everything unexpected: storage and crypto failures.
	Internal
)

// Error is a typed failure raised by usecases and consumed by Respond.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given kind and client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a new Error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Status maps a Kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err to the client as JSON. Typed errors map to their kind's
// status with their message; anything else becomes a 500 with a generic body
// so that internals never leak.
func Respond(c *gin.Context, err error) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		if httpErr.Kind == Internal {
			slog.Error("internal error", "error", err, "path", c.FullPath())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(Status(httpErr.Kind), gin.H{"error": httpErr.Message})
		return
	}
	slog.Error("unhandled error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
