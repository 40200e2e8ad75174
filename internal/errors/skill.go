package errors

import "net/http"

var ErrNoSkillsFound = &Exception{
	Code:       "NoSkillsFound",
	Message:    "Invalid account ID or No skills found for the provided account ID",
	StatusCode: http.StatusNotFound,
}
