package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "skill-share.com/skill-share/internal/errors"
	middleware "skill-share.com/skill-share/internal/http/middlewares"
)

type successResponse struct {
	StatusCode int         `json:"statusCode"`
	Timestamp  string      `json:"timestamp"`
	Data       interface{} `json:"data"`
	RequestID  string      `json:"requestId"`
}

type errorBody struct {
	ErrorCode   string `json:"errorCode"`
	Description string `json:"description"`
}

type errorResponse struct {
	StatusCode int       `json:"statusCode"`
	Timestamp  string    `json:"timestamp"`
	Error      errorBody `json:"error"`
	RequestID  string    `json:"requestId"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, successResponse{
		StatusCode: status,
		Timestamp:  timestamp(),
		Data:       data,
		RequestID:  middleware.GetRequestID(c),
	})
}

// NewErrorHandler renders every handler error in the error envelope.
// Failures outside the domain taxonomy are logged and hidden behind a
// generic internal error.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		exc := toException(err)
		requestID := middleware.GetRequestID(c)
		if exc.StatusCode >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("request_id", requestID),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		} else {
			log.Warn("request rejected",
				zap.String("request_id", requestID),
				zap.String("code", exc.Code),
				zap.String("description", exc.Message))
		}

		body := errorResponse{
			StatusCode: exc.StatusCode,
			Timestamp:  timestamp(),
			Error: errorBody{
				ErrorCode:   exc.Code,
				Description: exc.Message,
			},
			RequestID: requestID,
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(exc.StatusCode)
		} else {
			err = c.JSON(exc.StatusCode, body)
		}
		if err != nil {
			log.Error("failed to write error response", zap.Error(err))
		}
	}
}

func toException(err error) *apperrors.Exception {
	if exc, ok := apperrors.As(err); ok {
		return exc
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return &apperrors.Exception{
			Code:       strings.ReplaceAll(http.StatusText(he.Code), " ", ""),
			Message:    fmt.Sprint(he.Message),
			StatusCode: he.Code,
		}
	}

	return apperrors.ErrInternal
}
