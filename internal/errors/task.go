package errors

import "net/http"

var ErrInvalidStartDate = &Exception{
	Code:       "InvalidStartDate",
	Message:    "expectedStartDate must be today or a future date",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskNotFound = &Exception{
	Code:       "TaskNotFound",
	Message:    "Task not found",
	StatusCode: http.StatusNotFound,
}

var ErrNoTasksFound = &Exception{
	Code:       "NoTasksFound",
	Message:    "Invalid account id / No tasks found for provided account id",
	StatusCode: http.StatusNotFound,
}

var ErrInvalidTaskProgressUpdate = &Exception{
	Code:       "InvalidTaskProgressUpdate",
	Message:    "Task is not assigned to a provider / invalid account id",
	StatusCode: http.StatusForbidden,
}

var ErrInvalidTaskStatusUpdate = &Exception{
	Code:       "InvalidTaskStatusUpdate",
	Message:    "Task is not created by given user",
	StatusCode: http.StatusForbidden,
}

var ErrTaskAlreadyCompleted = &Exception{
	Code:       "TaskAlreadyCompleted",
	Message:    "Task is already completed!",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskNeverStarted = &Exception{
	Code:       "TaskNeverStarted",
	Message:    "Task is never started by any provider!",
	StatusCode: http.StatusBadRequest,
}
