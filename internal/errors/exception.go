package errors

import (
	"errors"
	"net/http"
)

// Exception is a domain failure with a stable machine-readable code.
type Exception struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Is matches on Code so a copy made by WithMessage still matches its sentinel.
func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of e carrying a more specific description.
func (e *Exception) WithMessage(message string) *Exception {
	return &Exception{Code: e.Code, Message: message, StatusCode: e.StatusCode}
}

func As(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var ErrInternal = &Exception{
	Code:       "InternalServerException",
	Message:    "Something went wrong!",
	StatusCode: http.StatusInternalServerError,
}
