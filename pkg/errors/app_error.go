package errors

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type AppError struct {
	Code    string
	Message string // empty means the i18n text for Code
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound        = "not_found"
	CodeInvalidID       = "invalid_id"
	CodeValidation      = "validation_error"
	CodeUnsupportedType = "unsupported_type"
	CodeFileTooLarge    = "file_too_large"
	CodeUploadFailed    = "upload_failed"
	CodeInternal        = "internal_error"
)

var (
	ErrNotFound = func(resource string) *AppError {
		return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource), Status: fiber.StatusNotFound}
	}
	ErrInvalidID = func(resource string, err error) *AppError {
		return &AppError{Code: CodeInvalidID, Message: fmt.Sprintf("Invalid %s ID", resource), Status: fiber.StatusBadRequest, Err: err}
	}
	ErrValidation = func(message string, err error) *AppError {
		return &AppError{Code: CodeValidation, Message: message, Status: fiber.StatusBadRequest, Err: err}
	}
	ErrUnsupportedType = func(message string) *AppError {
		return &AppError{Code: CodeUnsupportedType, Message: message, Status: fiber.StatusBadRequest}
	}
	ErrFileTooLarge = func(message string) *AppError {
		return &AppError{Code: CodeFileTooLarge, Message: message, Status: fiber.StatusBadRequest}
	}
	ErrUploadFailed = func(err error) *AppError {
		return &AppError{Code: CodeUploadFailed, Status: fiber.StatusInternalServerError, Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: CodeInternal, Status: fiber.StatusInternalServerError, Err: err}
	}
)
