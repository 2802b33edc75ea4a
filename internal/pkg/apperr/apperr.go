package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrConflict is returned when a creation violates a uniqueness constraint.
	ErrConflict = New(fiber.StatusBadRequest, CodeConflict, "resource already exists with given unique attributes")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type MotusError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *MotusError {
	return &MotusError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e MotusError) Msg(format string, parts ...interface{}) *MotusError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e MotusError) WithExtras(extras Extras) *MotusError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *MotusError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *MotusError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
