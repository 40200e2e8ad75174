package dto

import (
	"github.com/shopspring/decimal"

	"skill-share.com/skill-share/internal/constants"
	model "skill-share.com/skill-share/internal/models"
)

type AddUpdateSkillRequest struct {
	Category     constants.SkillCategory `json:"category"`
	Experience   float64                 `json:"experience"`
	NatureOfWork constants.NatureOfWork  `json:"natureOfWork"`
	HourlyRate   decimal.Decimal         `json:"hourlyRate"`
	RateCurrency constants.RateCurrency  `json:"rateCurrency"`
}

type GetSkillsRequest struct {
	AccountID string `json:"accountId"`
}

type SkillSummary struct {
	Category     constants.SkillCategory `json:"category"`
	Experience   float64                 `json:"experience"`
	NatureOfWork constants.NatureOfWork  `json:"natureOfWork"`
	HourlyRate   decimal.Decimal         `json:"hourlyRate"`
	RateCurrency constants.RateCurrency  `json:"rateCurrency"`
}

func NewSkillSummary(s model.Skill) SkillSummary {
	return SkillSummary{
		Category:     s.Category,
		Experience:   s.Experience,
		NatureOfWork: s.NatureOfWork,
		HourlyRate:   s.HourlyRate,
		RateCurrency: s.RateCurrency,
	}
}
