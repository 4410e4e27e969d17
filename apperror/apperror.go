// Package apperror defines the closed set of error kinds the API surfaces.
// Handlers map them 1:1 onto HTTP status codes; everything else is a 500.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindValidation   Kind = "VALIDATION"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	// SeatIDs carries the colliding (or unknown) seat ids on booking conflicts.
	SeatIDs []uint
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: fiber.StatusConflict, Message: message}
}

// SeatConflict is a Conflict that names the seat ids already ticketed for the showtime.
func SeatConflict(message string, seatIDs []uint) *Error {
	return &Error{Kind: KindConflict, Status: fiber.StatusConflict, Message: message, SeatIDs: seatIDs}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Status: fiber.StatusForbidden, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Status: fiber.StatusUnauthorized, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: message}
}

func ValidationSeats(message string, seatIDs []uint) *Error {
	return &Error{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: message, SeatIDs: seatIDs}
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	ae, ok := From(err)
	return ok && ae.Kind == kind
}
