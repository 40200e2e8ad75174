package errors

import "net/http"

var ErrValidationFailed = &Exception{
	Code:       "ValidationFailed",
	Message:    "request validation failed",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidJSON = &Exception{
	Code:       "InvalidJSON",
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrMissingAuthorizationHeader = &Exception{
	Code:       "MissingAuthorizationHeader",
	Message:    "Authorization header missing or invalid",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidToken = &Exception{
	Code:       "InvalidToken",
	Message:    "Invalid or expired token",
	StatusCode: http.StatusUnauthorized,
}

var ErrForbidden = &Exception{
	Code:       "Forbidden",
	Message:    "Access to this resource is not allowed",
	StatusCode: http.StatusForbidden,
}

var ErrRateLimitExceeded = &Exception{
	Code:       "RateLimitExceeded",
	Message:    "rate limit exceeded",
	StatusCode: http.StatusTooManyRequests,
}

func Validation(message string) *Exception {
	return ErrValidationFailed.WithMessage(message)
}
