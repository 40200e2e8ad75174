package errors

import "net/http"

var ErrAccountNotFound = &Exception{
	Code:       "AccountNotFound",
	Message:    "Account not found",
	StatusCode: http.StatusNotFound,
}

var ErrAccountAlreadyExists = &Exception{
	Code:       "AccountAlreadyExists",
	Message:    "An account with this email already exists",
	StatusCode: http.StatusConflict,
}

var ErrMissingIndividualAccount = &Exception{
	Code:       "MissingIndividualAccount",
	Message:    "Individual account details must be provided when type is INDIVIDUAL",
	StatusCode: http.StatusBadRequest,
}

var ErrMissingCompanyAccount = &Exception{
	Code:       "MissingCompanyAccount",
	Message:    "Company account details must be provided when type is COMPANY",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPassword = &Exception{
	Code:       "InvalidPassword",
	Message:    "Password is incorrect",
	StatusCode: http.StatusUnauthorized,
}

var ErrNotAUser = &Exception{
	Code:       "NotAUser",
	Message:    "Only users can create tasks",
	StatusCode: http.StatusForbidden,
}

var ErrNotAProvider = &Exception{
	Code:       "NotAProvider",
	Message:    "Only provider can add / update skill",
	StatusCode: http.StatusForbidden,
}
