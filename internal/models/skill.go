package model

import (
	"time"

	"github.com/shopspring/decimal"

	"skill-share.com/skill-share/internal/constants"
)

// Skill is a provider's declared capability. A provider holds at most one skill per category.
type Skill struct {
	ID           string                  `gorm:"primaryKey;size:36" json:"id"`
	AccountID    string                  `gorm:"size:36;not null;uniqueIndex:idx_skill_account_category" json:"accountId"`
	Category     constants.SkillCategory `gorm:"type:varchar(20);not null;uniqueIndex:idx_skill_account_category" json:"category"`
	Experience   float64                 `gorm:"not null" json:"experience"`
	NatureOfWork constants.NatureOfWork  `gorm:"type:varchar(20);not null" json:"natureOfWork"`
	HourlyRate   decimal.Decimal         `gorm:"type:decimal(12,2);not null" json:"hourlyRate"`
	RateCurrency constants.RateCurrency  `gorm:"type:varchar(3);not null" json:"rateCurrency"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}
