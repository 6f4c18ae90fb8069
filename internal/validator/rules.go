package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// The registration contract asks for a simple local@domain.tld shape rather
// than full RFC 5322, so addresses like "user@localhost" are rejected.
var emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// registerCustomRules installs the domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'email_shape': local@domain.tld
	mustRegister("email_shape", validateEmailShape)
}

func validateEmailShape(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are 'required's job
	}
	return emailShapeRe.MatchString(value)
}
