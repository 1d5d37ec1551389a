//go:build unit

package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"shop-api/pkg/cerror"
	"shop-api/pkg/jwt_generator"
)

func TestGuard_RequireAuthentication(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		mockController := gomock.NewController(t)
		defer mockController.Finish()

		mockJwtGenerator := jwt_generator.NewMockJwtGenerator(mockController)
		mockJwtGenerator.
			EXPECT().
			VerifyAccessToken(TestAccessToken).
			Return(&jwt_generator.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject: TestUserId,
				},
			}, nil)

		mockIdentityResolver := NewMockIdentityResolver(mockController)
		mockIdentityResolver.
			EXPECT().
			ResolveIdentity(gomock.Any(), TestUserId).
			Return(&Identity{
				Id:   TestUserId,
				Role: RoleUser,
			}, nil)

		guard := NewGuard(mockIdentityResolver, mockJwtGenerator)

		app := fiber.New()
		app.Get("/me", guard.RequireAuthentication(), func(ctx *fiber.Ctx) error {
			identity := IdentityFromContext(ctx)
			assert.NotNil(t, identity)
			assert.Equal(t, TestUserId, identity.Id)
			return ctx.SendStatus(fiber.StatusOK)
		})

		request := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+TestAccessToken)

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	})

	t.Run("when authorization header is missing should return unauthorized", func(t *testing.T) {
		guard := NewGuard(nil, nil)

		app := fiber.New(fiber.Config{
			ErrorHandler: cerror.Middleware,
		})
		app.Get("/me", guard.RequireAuthentication(), func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusOK)
		})

		request := httptest.NewRequest(fiber.MethodGet, "/me", nil)

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, response.StatusCode)
	})
}

func TestGuard_RequireRole(t *testing.T) {
	setupApp := func(guard Guard, identity *Identity) *fiber.App {
		app := fiber.New(fiber.Config{
			ErrorHandler: cerror.Middleware,
		})
		app.Get("/admin",
			func(ctx *fiber.Ctx) error {
				if identity != nil {
					ctx.Locals(ContextKeyIdentity, identity)
				}
				return ctx.Next()
			},
			guard.RequireRole(RoleAdmin),
			func(ctx *fiber.Ctx) error {
				return ctx.SendStatus(fiber.StatusOK)
			},
		)
		return app
	}

	t.Run("happy path", func(t *testing.T) {
		guard := NewGuard(nil, nil)
		app := setupApp(guard, &Identity{
			Id:   TestUserId,
			Role: RoleAdmin,
		})

		request := httptest.NewRequest(fiber.MethodGet, "/admin", nil)

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	})

	t.Run("when identity is missing should return forbidden", func(t *testing.T) {
		guard := NewGuard(nil, nil)
		app := setupApp(guard, nil)

		request := httptest.NewRequest(fiber.MethodGet, "/admin", nil)

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, response.StatusCode)
	})

	t.Run("when role does not match should return forbidden", func(t *testing.T) {
		guard := NewGuard(nil, nil)
		app := setupApp(guard, &Identity{
			Id:   TestUserId,
			Role: RoleUser,
		})

		request := httptest.NewRequest(fiber.MethodGet, "/admin", nil)

		response, err := app.Test(request)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, response.StatusCode)
	})
}

func TestIdentityFromContext(t *testing.T) {
	app := fiber.New()
	app.Get("/anonymous", func(ctx *fiber.Ctx) error {
		assert.Nil(t, IdentityFromContext(ctx))
		return ctx.SendStatus(fiber.StatusOK)
	})

	request := httptest.NewRequest(fiber.MethodGet, "/anonymous", nil)

	response, err := app.Test(request)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
}
