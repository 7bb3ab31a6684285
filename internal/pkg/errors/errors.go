package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResp carries the HTTP status code a failure maps to, so handlers
// can surface it without switching on error strings.
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func New(code int, message string) *ErrorResp {
	return &ErrorResp{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) *ErrorResp {
	return New(fiber.StatusBadRequest, message)
}

func UnauthorizedError(message string) *ErrorResp {
	return New(fiber.StatusUnauthorized, message)
}

func NotFound(message string) *ErrorResp {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *ErrorResp {
	return New(fiber.StatusConflict, message)
}

func InternalServerError(message string) *ErrorResp {
	return New(fiber.StatusInternalServerError, message)
}

// Code extracts the HTTP status code from err, defaulting to 500.
func Code(err error) int {
	var resp *ErrorResp
	if stderrors.As(err, &resp) {
		return resp.Code
	}
	return fiber.StatusInternalServerError
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	var resp *ErrorResp
	return stderrors.As(err, &resp) && resp.Code == fiber.StatusNotFound
}
