package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func validInput() CreateLeadInput {
	return CreateLeadInput{
		Email:    "a@b.com",
		Name:     "Ana",
		Phone:    "+34 612 345 678",
		Interest: "Sauna",
		Consent:  boolPtr(true),
	}
}

func fieldsOf(errs ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateValidInput(t *testing.T) {
	errs := ValidateCreateLeadInput(validInput(), true)
	assert.Empty(t, errs)
}

func TestValidateMissingEmail(t *testing.T) {
	input := validInput()
	input.Email = ""

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "email")
	assert.Equal(t, "required", errs[0].Code)
}

func TestValidateInvalidEmailSyntax(t *testing.T) {
	input := validInput()
	input.Email = "not-an-email"

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "email")
	assert.Equal(t, "invalid_email", errs[0].Code)
}

func TestValidateUnknownInterest(t *testing.T) {
	input := validInput()
	input.Interest = "Crioterapia"

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "interest")
	assert.Equal(t, "invalid_enum_value", errs[0].Code)
}

func TestValidateMissingConsent(t *testing.T) {
	input := validInput()
	input.Consent = nil

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "consent")
	assert.Equal(t, "required", errs[0].Code)
}

func TestValidateConsentFalse(t *testing.T) {
	input := validInput()
	input.Consent = boolPtr(false)

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "consent")
	assert.Equal(t, "consent_required", errs[0].Code)
}

func TestValidatePhoneTooShort(t *testing.T) {
	input := validInput()
	input.Phone = "123"

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "phone")
	assert.Equal(t, "invalid_phone", errs[0].Code)
}

func TestValidatePhoneStripsFormatting(t *testing.T) {
	input := validInput()
	input.Phone = "(11) 99999-9999"

	errs := ValidateCreateLeadInput(input, true)
	assert.Empty(t, errs)
}

func TestValidatePhoneMissingWhenRequired(t *testing.T) {
	input := validInput()
	input.Phone = ""

	errs := ValidateCreateLeadInput(input, true)
	assert.Contains(t, fieldsOf(errs), "phone")
	assert.Equal(t, "required", errs[0].Code)
}

func TestValidatePhoneOptionalVariant(t *testing.T) {
	input := validInput()
	input.Phone = ""

	errs := ValidateCreateLeadInput(input, false)
	assert.Empty(t, errs)

	// A supplied phone is still length-checked in the optional variant.
	input.Phone = "42"
	errs = ValidateCreateLeadInput(input, false)
	assert.Contains(t, fieldsOf(errs), "phone")
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	input := CreateLeadInput{
		Email:    "broken",
		Interest: "Nope",
		Consent:  boolPtr(false),
	}

	errs := ValidateCreateLeadInput(input, true)
	fields := fieldsOf(errs)
	assert.ElementsMatch(t, []string{"email", "interest", "phone", "consent"}, fields)
}
