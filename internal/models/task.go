package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"skill-share.com/skill-share/internal/constants"
)

type Task struct {
	ID                   string                  `gorm:"primaryKey;size:36" json:"id"`
	Category             constants.SkillCategory `gorm:"type:varchar(20);not null" json:"category"`
	Name                 string                  `gorm:"size:50;not null" json:"name"`
	Description          string                  `gorm:"size:100;not null" json:"description"`
	ExpectedStartDate    datatypes.Date          `gorm:"not null" json:"expectedStartDate"`
	ExpectedWorkingHours float64                 `gorm:"not null" json:"expectedWorkingHours"`
	HourlyRate           decimal.Decimal         `gorm:"type:decimal(12,2);not null" json:"hourlyRate"`
	RateCurrency         constants.RateCurrency  `gorm:"type:varchar(3);not null" json:"rateCurrency"`
	Status               constants.TaskStatus    `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	OwnerID              string                  `gorm:"size:36;not null;index" json:"-"`
	Owner                *Account                `gorm:"foreignKey:OwnerID" json:"user,omitempty"`
	ProviderID           *string                 `gorm:"size:36;index" json:"-"`
	Provider             *Account                `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Offers               []TaskOffer             `gorm:"foreignKey:TaskID" json:"offers,omitempty"`
	Progress             []ProgressEntry         `gorm:"foreignKey:TaskID" json:"progress"`
	CreatedAt            time.Time               `json:"createdAt"`
	UpdatedAt            time.Time               `json:"updatedAt"`
}

// TaskOffer records a provider's proposal to work a task. The composite
// primary key makes a second offer by the same provider a key conflict.
type TaskOffer struct {
	TaskID     string    `gorm:"primaryKey;size:36" json:"taskId"`
	ProviderID string    `gorm:"primaryKey;size:36;index" json:"providerId"`
	Provider   *Account  `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProgressEntry is an append-only note by the assigned provider. Entries
// are ordered by ID.
type ProgressEntry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TaskID      string    `gorm:"size:36;not null;index" json:"-"`
	Description string    `gorm:"not null" json:"description"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
}

func (ProgressEntry) TableName() string {
	return "task_progress"
}

func (t *Task) HasProvider() bool {
	return t.ProviderID != nil && *t.ProviderID != ""
}

func (t *Task) IsOwnedBy(accountID string) bool {
	return t.OwnerID == accountID
}

func (t *Task) IsAssignedTo(accountID string) bool {
	return t.HasProvider() && *t.ProviderID == accountID
}

func (t *Task) HasOfferFrom(providerID string) bool {
	for _, o := range t.Offers {
		if o.ProviderID == providerID {
			return true
		}
	}
	return false
}
