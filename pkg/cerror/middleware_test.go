//go:build unit

package cerror

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestMiddleware(t *testing.T) {
	t.Run("when handler returns custom error should respond with its status and message", func(t *testing.T) {
		app := fiber.New(fiber.Config{
			ErrorHandler: Middleware,
		})
		app.Get("/", func(ctx *fiber.Ctx) error {
			return NewError(fiber.StatusForbidden, "insufficient role").
				SetSeverity(zapcore.WarnLevel)
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.JSONEq(t, `{"message":"insufficient role"}`, string(body))
	})

	t.Run("when handler returns server side custom error should mask message", func(t *testing.T) {
		app := fiber.New(fiber.Config{
			ErrorHandler: Middleware,
		})
		app.Get("/", func(ctx *fiber.Ctx) error {
			return NewError(fiber.StatusInternalServerError, "mongodb exploded")
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"message":"internal server error"}`, string(body))
	})

	t.Run("when handler returns fiber error should respond with its status", func(t *testing.T) {
		app := fiber.New(fiber.Config{
			ErrorHandler: Middleware,
		})
		app.Get("/", func(ctx *fiber.Ctx) error {
			return fiber.ErrMethodNotAllowed
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("when handler returns plain error should respond with internal server error", func(t *testing.T) {
		app := fiber.New(fiber.Config{
			ErrorHandler: Middleware,
		})
		app.Get("/", func(ctx *fiber.Ctx) error {
			return errors.New("something went wrong")
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		resp, _ := app.Test(req)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"message":"internal server error"}`, string(body))
	})
}
