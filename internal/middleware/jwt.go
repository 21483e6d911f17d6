package middleware

import (
	"context"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/repositories"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/services"
)

const claimsContextKey = "token_claims"

// JWTConfig builds the echo-jwt configuration. Signature and expiry checks
// are delegated to the token service; any failure is a 401.
func JWTConfig(tokenSvc services.TokenService) echojwt.Config {
	return echojwt.Config{
		ContextKey: claimsContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokenSvc.Validate(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Unauthorized("Missing or invalid token")
		},
	}
}

// ResolveIdentity maps the validated token subject back to a stored user and
// threads the user id through the request context. A valid token whose
// account no longer exists is rejected with 403, not 401: the credential
// checked out but there is nobody behind it.
func ResolveIdentity(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*services.TokenClaims)
			if !ok {
				return apperrors.Unauthorized("Missing or invalid token")
			}

			user, err := userRepo.GetByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return apperrors.Internal("failed to resolve identity", err)
			}
			if user == nil {
				return apperrors.Forbidden("User account no longer exists")
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, user.ID)
			ctx = context.WithValue(ctx, common.UserEmailKey, user.Email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
