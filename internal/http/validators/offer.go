package validators

import dto "skill-share.com/skill-share/internal/data_models"

func ValidateMakeOfferRequest(r *dto.MakeOfferRequest) error {
	return required("taskId", r.TaskID)
}

func ValidateAcceptOfferRequest(r *dto.AcceptOfferRequest) error {
	return firstError(
		required("taskId", r.TaskID),
		required("providerId", r.ProviderID),
	)
}
