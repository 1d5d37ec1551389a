package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shop-api/pkg/cerror"
	"shop-api/pkg/jwt_generator"
)

const bearerScheme = "Bearer "

// IdentityResolver loads the current state of a user by id. It is
// implemented by the user service so that token subjects are always
// checked against the live user store.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userId string) (*Identity, error)
}

type Guard interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*Identity, error)
	Authorize(identity *Identity, requiredRole string) error
	RequireAuthentication() fiber.Handler
	RequireRole(requiredRole string) fiber.Handler
}

type guard struct {
	identityResolver IdentityResolver
	jwtGenerator     jwt_generator.JwtGenerator
}

func NewGuard(
	identityResolver IdentityResolver,
	jwtGenerator jwt_generator.JwtGenerator,
) Guard {
	return &guard{
		identityResolver: identityResolver,
		jwtGenerator:     jwtGenerator,
	}
}

func (g *guard) Authenticate(
	ctx context.Context,
	authorizationHeader string,
) (*Identity, error) {
	if !strings.HasPrefix(authorizationHeader, bearerScheme) {
		return nil, cerror.NewError(
			http.StatusUnauthorized,
			"access token not provided",
		).SetSeverity(zap.WarnLevel)
	}

	accessToken := strings.TrimPrefix(authorizationHeader, bearerScheme)
	claims, err := g.jwtGenerator.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, cerror.NewError(
			http.StatusUnauthorized,
			"access token is not valid",
			zap.Error(err),
		).SetSeverity(zap.WarnLevel)
	}

	identity, err := g.identityResolver.ResolveIdentity(ctx, claims.Subject)
	if err != nil {
		var customError *cerror.CustomError
		if errors.As(err, &customError) && customError.HttpStatusCode == http.StatusNotFound {
			return nil, cerror.NewError(
				http.StatusUnauthorized,
				"access token subject not found",
				zap.String("userId", claims.Subject),
			).SetSeverity(zap.WarnLevel)
		}
		return nil, err
	}

	return identity, nil
}

func (g *guard) Authorize(identity *Identity, requiredRole string) error {
	if identity == nil {
		return cerror.NewError(
			http.StatusForbidden,
			"access denied",
		).SetSeverity(zap.WarnLevel)
	}

	if identity.Role != requiredRole {
		return cerror.NewError(
			http.StatusForbidden,
			fmt.Sprintf("%s role required", requiredRole),
			zap.String("userId", identity.Id),
			zap.String("role", identity.Role),
		).SetSeverity(zap.WarnLevel)
	}

	return nil
}
