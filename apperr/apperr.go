// Package apperr defines the error kinds surfaced at the service boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error carries a client-safe Message; Err is kept for logging only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two *Error values of the same kind and message, so sentinel
// errors below work with errors.Is even after wrapping a cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "Email address already taken"}
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "Invalid email/password"}
	ErrInvalidToken       = &Error{Kind: KindAuthentication, Message: "Invalid or expired token"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrProductNotFound    = &Error{Kind: KindNotFound, Message: "Product not found"}
	ErrOrderNotFound      = &Error{Kind: KindNotFound, Message: "Order not found"}
	ErrCartItemNotFound   = &Error{Kind: KindNotFound, Message: "Product is not in the cart"}
	ErrCartEmpty          = &Error{Kind: KindValidation, Message: "Cart is empty"}
)

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string, err error) error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal hides err behind a generic message.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// Wrap attaches cause to a sentinel without changing what errors.Is sees.
func Wrap(sentinel *Error, cause error) error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-safe message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "Internal server error"
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusUnprocessableEntity
	case KindAuthentication:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
