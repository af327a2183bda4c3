// Package validator provides a shared validation engine with custom rules
// for the lending domain.
package validator

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Pix key formats. CPF/CNPJ/phone are matched on digits only; a random key
// is a 32-character (or longer) opaque identifier.
var (
	digitsRegex = regexp.MustCompile(`\D`)
	cpfRegex    = regexp.MustCompile(`^\d{11}$`)
	cnpjRegex   = regexp.MustCompile(`^\d{14}$`)
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^\d{10,11}$`)
)

// Get returns the shared validation engine with all custom rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("loan_purpose", validateLoanPurpose)
		_ = validate.RegisterValidation("risk_tier", validateRiskTier)
		_ = validate.RegisterValidation("payment_status", validatePaymentStatus)
		_ = validate.RegisterValidation("pix_key_type", validatePixKeyType)
	})
	return validate
}

func validateLoanPurpose(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "capital_giro", "expansao", "equipamentos", "marketing", "reforma", "outros":
		return true
	}
	return false
}

func validateRiskTier(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "excellent", "good", "fair", "poor", "very_poor":
		return true
	}
	return false
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "paid", "overdue", "partially_paid":
		return true
	}
	return false
}

func validatePixKeyType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cpf", "cnpj", "email", "phone", "random":
		return true
	}
	return false
}

// ValidPixKey reports whether key is a well-formed Pix key of the given type.
func ValidPixKey(key, keyType string) bool {
	switch keyType {
	case "cpf":
		return cpfRegex.MatchString(digitsRegex.ReplaceAllString(key, ""))
	case "cnpj":
		return cnpjRegex.MatchString(digitsRegex.ReplaceAllString(key, ""))
	case "email":
		return emailRegex.MatchString(key)
	case "phone":
		return phoneRegex.MatchString(digitsRegex.ReplaceAllString(key, ""))
	case "random":
		return len(key) >= 32
	default:
		return false
	}
}
