package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs each request and its response. Errors are handed to
// echo's error handler here so the logged status is the one sent.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()
			requestID := zap.String("request_id", GetRequestID(c))

			log.Info("Request: "+req.Method+" "+req.URL.String(), requestID)

			if err := next(c); err != nil {
				c.Error(err)
			}

			log.Info("Response: "+req.Method+" "+req.URL.String(),
				requestID,
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
