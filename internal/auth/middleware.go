package auth

import (
	"github.com/gofiber/fiber/v2"
)

func (g *guard) RequireAuthentication() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, err := g.Authenticate(
			ctx.Context(),
			ctx.Get(fiber.HeaderAuthorization),
		)
		if err != nil {
			return err
		}

		ctx.Locals(ContextKeyIdentity, identity)
		return ctx.Next()
	}
}

func (g *guard) RequireRole(requiredRole string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity := IdentityFromContext(ctx)
		err := g.Authorize(identity, requiredRole)
		if err != nil {
			return err
		}

		return ctx.Next()
	}
}

// IdentityFromContext returns the identity stored by
// RequireAuthentication, or nil when the request is anonymous.
func IdentityFromContext(ctx *fiber.Ctx) *Identity {
	identity, ok := ctx.Locals(ContextKeyIdentity).(*Identity)
	if !ok {
		return nil
	}

	return identity
}
