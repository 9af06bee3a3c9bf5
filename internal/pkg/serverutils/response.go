package serverutils

import (
	"errors"

	"notebook-query-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const ContentTypeJSON = "application/json; charset=utf-8"

func ErrorResponse(message string) dto.ErrorBody {
	return dto.ErrorBody{Errors: []dto.ErrorMessage{{Message: message}}}
}

// ErrorHandler renders errors that escape handlers, including fiber's own
// 404/405, in the same shape as GraphQL errors.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return ctx.Status(code).JSON(ErrorResponse(message), ContentTypeJSON)
}
