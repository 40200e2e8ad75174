package dto

import (
	"github.com/shopspring/decimal"

	"skill-share.com/skill-share/internal/constants"
)

type CreateTaskRequest struct {
	Category             constants.SkillCategory `json:"category"`
	Name                 string                  `json:"name"`
	Description          string                  `json:"description"`
	ExpectedStartDate    string                  `json:"expectedStartDate"`
	ExpectedWorkingHours float64                 `json:"expectedWorkingHours"`
	HourlyRate           decimal.Decimal         `json:"hourlyRate"`
	RateCurrency         constants.RateCurrency  `json:"rateCurrency"`
}

type UpdateProgressRequest struct {
	TaskID      string `json:"taskId"`
	Description string `json:"description"`
}

type UpdateStatusRequest struct {
	TaskID string `json:"taskId"`
}
