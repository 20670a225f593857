package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse builds the error body the chat UI expects: a single "error"
// field.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}

// ErrorHandlerMiddleware converts panics and unhandled handler errors into a
// 500 {error} body so no internal fault ever takes down the session.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fmt.Sprintf("internal error: %v", r)))
			}
		}()

		if err = ctx.Next(); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(err.Error()))
		}
		return nil
	}
}
