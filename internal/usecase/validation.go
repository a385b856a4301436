package usecase

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/fisiomuv/preventa-api/internal/entity"
)

var nonDigits = regexp.MustCompile(`\D`)

// ValidateCreateLeadInput checks one submission and returns every violated
// field. phoneRequired switches between the two form variants.
func ValidateCreateLeadInput(input CreateLeadInput, phoneRequired bool) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, FieldError{"email", "Email es requerido", "required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, FieldError{"email", "Email inválido", "invalid_email"})
	}

	if strings.TrimSpace(input.Interest) == "" {
		errs = append(errs, FieldError{"interest", "Interés es requerido", "required"})
	} else if !entity.IsValidInterest(input.Interest) {
		errs = append(errs, FieldError{"interest", "Servicio no reconocido", "invalid_enum_value"})
	}

	if phoneRequired && strings.TrimSpace(input.Phone) == "" {
		errs = append(errs, FieldError{"phone", "Teléfono es requerido", "required"})
	} else if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errs = append(errs, FieldError{"phone", "Teléfono inválido", "invalid_phone"})
	}

	if input.Consent == nil {
		errs = append(errs, FieldError{"consent", "Debe aceptar los términos y condiciones", "required"})
	} else if !*input.Consent {
		errs = append(errs, FieldError{"consent", "Debe aceptar los términos y condiciones", "consent_required"})
	}

	return errs
}

// 7 to 15 digits after stripping formatting characters.
func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 7 && len(cleaned) <= 15
}
