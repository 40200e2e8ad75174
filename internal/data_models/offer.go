package dto

import (
	"skill-share.com/skill-share/internal/constants"
	model "skill-share.com/skill-share/internal/models"
)

type MakeOfferRequest struct {
	TaskID string `json:"taskId"`
}

type AcceptOfferRequest struct {
	ProviderID string `json:"providerId"`
	TaskID     string `json:"taskId"`
}

// AccountSummary is the public view of an account in offer listings.
type AccountSummary struct {
	ID                string                   `json:"id"`
	Email             string                   `json:"email"`
	IndividualAccount *model.IndividualProfile `json:"individualAccount,omitempty"`
	CompanyAccount    *model.CompanyProfile    `json:"companyAccount,omitempty"`
}

type ProviderSummary struct {
	AccountSummary
	Skills []SkillSummary `json:"skills"`
}

// ProviderOffer is an open task the provider has offered on.
type ProviderOffer struct {
	TaskID   string         `json:"taskId"`
	TaskName string         `json:"taskName"`
	User     AccountSummary `json:"user"`
}

// OwnerOffer is an open task the user owns, with everyone who offered on it.
type OwnerOffer struct {
	TaskID   string            `json:"taskId"`
	TaskName string            `json:"taskName"`
	Offers   []ProviderSummary `json:"offers"`
}

// OffersView holds exactly one populated list, selected by Role.
type OffersView struct {
	Role           constants.Role  `json:"role"`
	ProviderOffers []ProviderOffer `json:"providerOffers,omitempty"`
	OwnerOffers    []OwnerOffer    `json:"ownerOffers,omitempty"`
}

func NewAccountSummary(a *model.Account) AccountSummary {
	if a == nil {
		return AccountSummary{}
	}
	return AccountSummary{
		ID:                a.ID,
		Email:             a.Email,
		IndividualAccount: a.IndividualAccount,
		CompanyAccount:    a.CompanyAccount,
	}
}
