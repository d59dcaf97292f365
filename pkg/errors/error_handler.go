package errors

import (
	stderrors "errors"

	"portfolio/internal/domain/repositories"
	"portfolio/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// HandleError writes err as {"detail","error"} with the matching status code.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ae *AppError
	switch {
	case stderrors.As(err, &ae):
	case stderrors.Is(err, repositories.ErrNotFound):
		ae = &AppError{Code: CodeNotFound, Status: fiber.StatusNotFound, Err: err}
	default:
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code := CodeInternal
			switch {
			case fe.Code == fiber.StatusNotFound:
				code = CodeNotFound
			case fe.Code < fiber.StatusInternalServerError:
				code = CodeValidation
			}
			ae = &AppError{Code: code, Message: fe.Message, Status: fe.Code}
		} else {
			ae = ErrInternal(err)
		}
	}

	// Orijinal hatayı logla
	if ae.Err != nil || ae.Status >= fiber.StatusInternalServerError {
		zap.L().Warn("request failed",
			zap.String("code", ae.Code),
			zap.String("path", c.Path()),
			zap.Int("status", ae.Status),
			zap.Error(ae.Err),
		)
	}

	status := ae.Status
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	detail := ae.Message
	if detail == "" {
		detail = i18n.T(ae.Code)
	}

	return c.Status(status).JSON(ErrorResponse{Detail: detail, Error: ae.Code})
}

// FiberErrorHandler plugs HandleError into fiber.Config.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	return HandleError(c, err)
}
