package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

const MessageInternalServerError = "internal server error"

var (
	ErrorBadRequest = &CustomError{
		error:          errors.New("malformed request body or query parameter"),
		HttpStatusCode: fiber.StatusBadRequest,
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorGenerateAccessToken = &CustomError{
		error:          errors.New("error occurred while generate access token"),
		HttpStatusCode: fiber.StatusInternalServerError,
		LogMessage:     "error occurred while generate access token",
		LogSeverity:    zapcore.ErrorLevel,
	}

	ErrorGenerateRefreshToken = &CustomError{
		error:          errors.New("error occurred while generate refresh token"),
		HttpStatusCode: fiber.StatusInternalServerError,
		LogMessage:     "error occurred while generate refresh token",
		LogSeverity:    zapcore.ErrorLevel,
	}
)
