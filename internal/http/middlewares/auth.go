package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"skill-share.com/skill-share/internal/auth"
	"skill-share.com/skill-share/internal/constants"
	apperrors "skill-share.com/skill-share/internal/errors"
)

const accountIDKey = "account_id"

type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Authenticate requires a valid bearer token and stores its account id on
// the context.
func Authenticate(tokens TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := auth.ExtractBearer(c.Request().Header.Get(constants.HeaderAuthorization))
			if err != nil {
				return apperrors.ErrMissingAuthorizationHeader
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					return apperrors.ErrInvalidToken.WithMessage("Token has expired")
				}
				return apperrors.ErrInvalidToken
			}

			c.Set(accountIDKey, claims.AccountID)
			return next(c)
		}
	}
}

// GetAccountID returns the authenticated caller, or "" outside Authenticate.
func GetAccountID(c echo.Context) string {
	id, _ := c.Get(accountIDKey).(string)
	return id
}
