package constants

// Column and request length limits shared by models and validators.
const (
	EmailMaxLength             = 100
	PasswordMinLength          = 8
	PasswordMaxLength          = 20
	NameMaxLength              = 50
	TaskNameMaxLength          = 50
	TaskDescriptionMaxLength   = 100
	StreetNameMaxLength        = 50
	CityMaxLength              = 15
	StateMaxLength             = 15
	BusinessTaxNumberMaxLength = 10
)

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "request-id"
)
