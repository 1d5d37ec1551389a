package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shop-api/pkg/logger"
)

// Middleware is the fiber error handler. Authentication and authorization
// failures never escape it as panics or 500s; every CustomError is logged at
// its recorded severity and turned into a structured response. Messages of
// server-side errors are masked.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	isCerror := errors.As(err, &cerr)
	if !isCerror {
		var fiberError *fiber.Error
		if errors.As(err, &fiberError) {
			return ctx.
				Status(fiberError.Code).
				JSON(fiber.Map{"message": fiberError.Message})
		}

		return ctx.
			Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": MessageInternalServerError})
	}

	log := logger.FromContext(ctx.Context()).Desugar()
	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	message := cerr.LogMessage
	if cerr.HttpStatusCode >= fiber.StatusInternalServerError {
		message = MessageInternalServerError
	}

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(fiber.Map{"message": message})
}
