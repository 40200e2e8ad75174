package errors

import "net/http"

var ErrOfferAlreadyAccepted = &Exception{
	Code:       "OfferAlreadyAccepted",
	Message:    "An offer has already been accepted for this task",
	StatusCode: http.StatusBadRequest,
}

var ErrUnauthorizedRole = &Exception{
	Code:       "UnauthorizedRole",
	Message:    "Only providers can make offers",
	StatusCode: http.StatusForbidden,
}

var ErrAlreadyOffered = &Exception{
	Code:       "AlreadyOffered",
	Message:    "You have already made an offer for this task",
	StatusCode: http.StatusBadRequest,
}

var ErrUnauthorized = &Exception{
	Code:       "Unauthorized",
	Message:    "Only the task owner can accept offers",
	StatusCode: http.StatusForbidden,
}

var ErrAlreadyAccepted = &Exception{
	Code:       "AlreadyAccepted",
	Message:    "An offer has already been accepted for this task",
	StatusCode: http.StatusBadRequest,
}

var ErrOfferNotFound = &Exception{
	Code:       "OfferNotFound",
	Message:    "No offer from the given provider for this task",
	StatusCode: http.StatusNotFound,
}
