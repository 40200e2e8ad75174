package model

import (
	"time"

	"skill-share.com/skill-share/internal/constants"
)

type Address struct {
	StreetNumber string `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostCode     string `json:"postCode"`
}

type IndividualProfile struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	MobileNumber string  `json:"mobileNumber"`
	Address      Address `json:"address"`
}

type CompanyProfile struct {
	CompanyName             string   `json:"companyName"`
	RepresentativeFirstName string   `json:"representativeFirstName"`
	RepresentativeLastName  string   `json:"representativeLastName"`
	PhoneNumber             string   `json:"phoneNumber"`
	BusinessTaxNumber       string   `json:"businessTaxNumber"`
	Address                 *Address `json:"address,omitempty"`
}

// Account is either a task-posting USER or a task-performing PROVIDER.
// Only the profile matching Type is populated.
type Account struct {
	ID                string                `gorm:"primaryKey;size:36" json:"id"`
	Email             string                `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash      string                `gorm:"size:250;not null" json:"-"`
	Role              constants.Role        `gorm:"type:varchar(20);not null;index" json:"role"`
	Type              constants.AccountType `gorm:"type:varchar(20);not null" json:"type"`
	IndividualAccount *IndividualProfile    `gorm:"type:text;serializer:json" json:"individualAccount,omitempty"`
	CompanyAccount    *CompanyProfile       `gorm:"type:text;serializer:json" json:"companyAccount,omitempty"`
	Skills            []Skill               `gorm:"foreignKey:AccountID" json:"skills,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

func (a *Account) IsUser() bool {
	return a.Role == constants.RoleUser
}

func (a *Account) IsProvider() bool {
	return a.Role == constants.RoleProvider
}
