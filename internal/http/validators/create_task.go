package validators

import (
	"skill-share.com/skill-share/internal/constants"
	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if !r.Category.Valid() {
		return apperrors.Validation("category must be one of FRONTEND, BACKEND, TESTING")
	}
	if err := firstError(
		required("name", r.Name),
		maxLength("name", r.Name, constants.TaskNameMaxLength),
		required("description", r.Description),
		maxLength("description", r.Description, constants.TaskDescriptionMaxLength),
		required("expectedStartDate", r.ExpectedStartDate),
	); err != nil {
		return err
	}
	if _, err := ParseDate(r.ExpectedStartDate); err != nil {
		return err
	}
	if r.ExpectedWorkingHours <= 0 {
		return apperrors.Validation("expectedWorkingHours must be a positive number")
	}
	if !r.HourlyRate.IsPositive() {
		return apperrors.Validation("hourlyRate must be a positive number")
	}
	if !r.RateCurrency.Valid() {
		return apperrors.Validation("rateCurrency must be one of USD, AUD, SGD, INR")
	}
	return nil
}

func ValidateUpdateProgressRequest(r *dto.UpdateProgressRequest) error {
	return firstError(
		required("taskId", r.TaskID),
		required("description", r.Description),
	)
}

func ValidateUpdateStatusRequest(r *dto.UpdateStatusRequest) error {
	return required("taskId", r.TaskID)
}
