package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "skill-share.com/skill-share/internal/errors"
	"skill-share.com/skill-share/internal/ratelimit"
)

// RateLimiter rejects clients that exceed the limiter's budget for their IP.
// A failing limiter backend lets the request through.
func RateLimiter(limiter ratelimit.Limiter, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn("rate limiter unavailable", zap.String("client_ip", key), zap.Error(err))
				return next(c)
			}
			if !allowed {
				return apperrors.ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
