package validators

import (
	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
)

func ValidateAddUpdateSkillRequest(r *dto.AddUpdateSkillRequest) error {
	if !r.Category.Valid() {
		return apperrors.Validation("category must be one of FRONTEND, BACKEND, TESTING")
	}
	if r.Experience <= 0 {
		return apperrors.Validation("experience must be a positive number")
	}
	if !r.NatureOfWork.Valid() {
		return apperrors.Validation("natureOfWork must be one of ON_SITE, ONLINE")
	}
	if !r.HourlyRate.IsPositive() {
		return apperrors.Validation("hourlyRate must be a positive number")
	}
	if !r.RateCurrency.Valid() {
		return apperrors.Validation("rateCurrency must be one of USD, AUD, SGD, INR")
	}
	return nil
}

func ValidateGetSkillsRequest(r *dto.GetSkillsRequest) error {
	return required("accountId", r.AccountID)
}
