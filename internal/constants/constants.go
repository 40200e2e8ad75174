package constants

type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "PROVIDER"
)

type AccountType string

const (
	AccountIndividual AccountType = "INDIVIDUAL"
	AccountCompany    AccountType = "COMPANY"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "FRONTEND"
	CategoryBackend  SkillCategory = "BACKEND"
	CategoryTesting  SkillCategory = "TESTING"
)

type RateCurrency string

const (
	CurrencyUSD RateCurrency = "USD"
	CurrencyAUD RateCurrency = "AUD"
	CurrencySGD RateCurrency = "SGD"
	CurrencyINR RateCurrency = "INR"
)

type NatureOfWork string

const (
	WorkOnSite NatureOfWork = "ON_SITE"
	WorkOnline NatureOfWork = "ONLINE"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleProvider
}

func (t AccountType) Valid() bool {
	return t == AccountIndividual || t == AccountCompany
}

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryTesting:
		return true
	}
	return false
}

func (c RateCurrency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyAUD, CurrencySGD, CurrencyINR:
		return true
	}
	return false
}

func (n NatureOfWork) Valid() bool {
	return n == WorkOnSite || n == WorkOnline
}
