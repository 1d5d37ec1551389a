package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shop-api/internal/auth"
	"shop-api/pkg/cerror"
	"shop-api/pkg/logger"
	"shop-api/pkg/server"
)

const RefreshTokenCookieName = "refreshToken"

type handler struct {
	userService Service
	guard       auth.Guard
	validate    *validator.Validate
}

func NewHandler(userService Service, guard auth.Guard) server.Handler {
	return &handler{
		userService: userService,
		guard:       guard,
		validate:    validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	userApi := app.Group("/api/user")

	userApi.Post("/register", h.Register)
	userApi.Post("/login", h.Login)
	userApi.Get("/refresh-token", h.RefreshAccessToken)
	userApi.Post("/logout", h.Logout)

	authenticated := h.guard.RequireAuthentication()
	adminOnly := h.guard.RequireRole(auth.RoleAdmin)

	// Static paths are registered before the parameterized ones so
	// "all-users" is never captured as a user id.
	userApi.Get("/all-users", authenticated, adminOnly, h.GetAllUsers)
	userApi.Put("/edit-user", authenticated, adminOnly, h.UpdateUser)
	userApi.Put("/block-user/:id", authenticated, adminOnly, h.BlockUser)
	userApi.Put("/unblock-user/:id", authenticated, adminOnly, h.UnblockUser)
	userApi.Get("/:id", authenticated, adminOnly, h.GetUserById)
	userApi.Delete("/:id", authenticated, adminOnly, h.DeleteUser)
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "register"))

	var payload RegisterPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	user, err := h.userService.Register(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(user)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	loginResult, err := h.userService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	ctx.Cookie(buildRefreshTokenCookie(loginResult.RefreshToken))

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(loginResult)
}

func (h *handler) RefreshAccessToken(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refreshAccessToken"))

	refreshToken := ctx.Cookies(RefreshTokenCookieName)
	if refreshToken == "" {
		return cerror.NewError(
			fiber.StatusForbidden,
			"refresh token not provided",
		).SetSeverity(zap.WarnLevel)
	}

	accessToken, err := h.userService.RefreshAccessToken(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"accessToken": accessToken,
		})
}

func (h *handler) Logout(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logout"))

	refreshToken := ctx.Cookies(RefreshTokenCookieName)
	if refreshToken != "" {
		err := h.userService.Logout(ctx.Context(), refreshToken)
		if err != nil {
			return err
		}
	}

	expiredCookie := buildRefreshTokenCookie("")
	expiredCookie.MaxAge = -1
	expiredCookie.Expires = time.Now().Add(-time.Hour)
	ctx.Cookie(expiredCookie)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "logged out",
		})
}

func (h *handler) GetAllUsers(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getAllUsers"))

	users, err := h.userService.GetAllUsers(ctx.Context())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(users)
}

func (h *handler) GetUserById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUserById"))

	user, err := h.userService.GetUserById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(user)
}

func (h *handler) UpdateUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateUser"))

	var payload UpdateUserPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	user, err := h.userService.UpdateUser(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(user)
}

func (h *handler) DeleteUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteUser"))

	err := h.userService.DeleteUser(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "user deleted",
		})
}

func (h *handler) BlockUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "blockUser"))

	user, err := h.userService.SetBlockStatus(ctx.Context(), ctx.Params("id"), true)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(user)
}

func (h *handler) UnblockUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "unblockUser"))

	user, err := h.userService.SetBlockStatus(ctx.Context(), ctx.Params("id"), false)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(user)
}

func buildRefreshTokenCookie(refreshToken string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(RefreshTokenExpirationDuration.Seconds()),
		Expires:  time.Now().Add(RefreshTokenExpirationDuration),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}
