// Package apperr classifies application failures so HTTP handlers can map
// them to status codes without inspecting error strings.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	Internal Kind = iota
	InvalidInput
	Conflict
	Unauthorized
	Unavailable
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind attached to err, or Internal for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case InvalidInput:
		return fiber.StatusBadRequest
	case Conflict:
		return fiber.StatusConflict
	case Unauthorized:
		return fiber.StatusUnauthorized
	case Unavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HTTPStatusOf is shorthand for HTTPStatus(KindOf(err)).
func HTTPStatusOf(err error) int {
	return HTTPStatus(KindOf(err))
}
