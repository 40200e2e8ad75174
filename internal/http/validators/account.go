package validators

import (
	"fmt"

	"skill-share.com/skill-share/internal/constants"
	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
)

func ValidateCreateAccountRequest(r *dto.CreateAccountRequest) error {
	if err := firstError(
		validateEmail(r.Email),
		validatePassword(r.Password),
	); err != nil {
		return err
	}
	if !r.Role.Valid() {
		return apperrors.Validation("role must be one of USER, PROVIDER")
	}
	if !r.Type.Valid() {
		return apperrors.Validation("type must be one of INDIVIDUAL, COMPANY")
	}

	// A missing profile is reported by the account service.
	if r.Type == constants.AccountIndividual && r.IndividualAccount != nil {
		return validateIndividual(r.IndividualAccount)
	}
	if r.Type == constants.AccountCompany && r.CompanyAccount != nil {
		return validateCompany(r.CompanyAccount)
	}
	return nil
}

func ValidateAuthenticateRequest(r *dto.AuthenticateRequest) error {
	return firstError(
		validateEmail(r.Email),
		required("password", r.Password),
	)
}

func validateEmail(email string) error {
	return firstError(
		required("email", email),
		maxLength("email", email, constants.EmailMaxLength),
		matches("email", email, emailPattern, "must be a valid email address"),
	)
}

func validatePassword(password string) error {
	if n := len(password); n < constants.PasswordMinLength || n > constants.PasswordMaxLength {
		return apperrors.Validation(fmt.Sprintf("password must be %d to %d characters",
			constants.PasswordMinLength, constants.PasswordMaxLength))
	}
	if !passwordCharset.MatchString(password) || !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.Validation("password must contain at least one letter and one number and only letters, numbers and @$!%*?&")
	}
	return nil
}

func validateIndividual(d *dto.IndividualAccountData) error {
	if err := firstError(
		required("firstName", d.FirstName),
		maxLength("firstName", d.FirstName, constants.NameMaxLength),
		required("lastName", d.LastName),
		maxLength("lastName", d.LastName, constants.NameMaxLength),
		matches("mobileNumber", d.MobileNumber, mobilePattern, "must be 10 digits"),
	); err != nil {
		return err
	}
	if d.Address == nil {
		return apperrors.Validation("address is required")
	}
	return validateAddress(d.Address)
}

func validateCompany(d *dto.CompanyAccountData) error {
	if err := firstError(
		required("companyName", d.CompanyName),
		maxLength("companyName", d.CompanyName, constants.NameMaxLength),
		required("representativeFirstName", d.RepresentativeFirstName),
		maxLength("representativeFirstName", d.RepresentativeFirstName, constants.NameMaxLength),
		required("representativeLastName", d.RepresentativeLastName),
		maxLength("representativeLastName", d.RepresentativeLastName, constants.NameMaxLength),
		matches("phoneNumber", d.PhoneNumber, phonePattern, "must be 10 to 15 digits"),
		matches("businessTaxNumber", d.BusinessTaxNumber, taxNumberPattern,
			fmt.Sprintf("must be %d uppercase letters or digits", constants.BusinessTaxNumberMaxLength)),
	); err != nil {
		return err
	}
	if d.Address == nil {
		return nil
	}
	return validateAddress(d.Address)
}

func validateAddress(a *dto.AddressData) error {
	return firstError(
		matches("streetNumber", a.StreetNumber, streetNumberPattern, "must be 1 to 5 digits"),
		required("streetName", a.StreetName),
		maxLength("streetName", a.StreetName, constants.StreetNameMaxLength),
		matches("city", a.City, placePattern, "must contain only letters and spaces"),
		maxLength("city", a.City, constants.CityMaxLength),
		matches("state", a.State, placePattern, "must contain only letters and spaces"),
		maxLength("state", a.State, constants.StateMaxLength),
		matches("postCode", a.PostCode, postCodePattern, "must be 4 to 6 digits"),
	)
}
