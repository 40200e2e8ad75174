package dto

import (
	"skill-share.com/skill-share/internal/constants"
	model "skill-share.com/skill-share/internal/models"
)

type AddressData struct {
	StreetNumber string `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostCode     string `json:"postCode"`
}

type IndividualAccountData struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	MobileNumber string       `json:"mobileNumber"`
	Address      *AddressData `json:"address"`
}

type CompanyAccountData struct {
	CompanyName             string       `json:"companyName"`
	RepresentativeFirstName string       `json:"representativeFirstName"`
	RepresentativeLastName  string       `json:"representativeLastName"`
	PhoneNumber             string       `json:"phoneNumber"`
	BusinessTaxNumber       string       `json:"businessTaxNumber"`
	Address                 *AddressData `json:"address,omitempty"`
}

type CreateAccountRequest struct {
	Email             string                 `json:"email"`
	Password          string                 `json:"password"`
	Role              constants.Role         `json:"role"`
	Type              constants.AccountType  `json:"type"`
	IndividualAccount *IndividualAccountData `json:"individualAccount,omitempty"`
	CompanyAccount    *CompanyAccountData    `json:"companyAccount,omitempty"`
}

type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthenticateResponse struct {
	Account     *model.Account `json:"account"`
	AccessToken string         `json:"accessToken"`
	TokenType   string         `json:"tokenType"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (a *AddressData) ToModel() model.Address {
	return model.Address{
		StreetNumber: a.StreetNumber,
		StreetName:   a.StreetName,
		City:         a.City,
		State:        a.State,
		PostCode:     a.PostCode,
	}
}

func (d *IndividualAccountData) ToModel() model.IndividualProfile {
	profile := model.IndividualProfile{
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		MobileNumber: d.MobileNumber,
	}
	if d.Address != nil {
		profile.Address = d.Address.ToModel()
	}
	return profile
}

func (d *CompanyAccountData) ToModel() model.CompanyProfile {
	profile := model.CompanyProfile{
		CompanyName:             d.CompanyName,
		RepresentativeFirstName: d.RepresentativeFirstName,
		RepresentativeLastName:  d.RepresentativeLastName,
		PhoneNumber:             d.PhoneNumber,
		BusinessTaxNumber:       d.BusinessTaxNumber,
	}
	if d.Address != nil {
		address := d.Address.ToModel()
		profile.Address = &address
	}
	return profile
}
