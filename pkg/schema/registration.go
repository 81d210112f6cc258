package schema

import (
	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// RegistrationInput carries the raw sign-up form values.
type RegistrationInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Registration is the accepted sign-up payload with normalized values.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string // canonical +91XXXXXXXXXX
	Password  string
	Warnings  []string
}

// ParseRegistration validates a sign-up form. The password confirmation
// check runs only after every field is individually valid and is reported
// against confirmPassword.
func ParseRegistration(in RegistrationInput) (Registration, error) {
	firstName := sanitizer.Trim(in.FirstName)
	lastName := sanitizer.Trim(in.LastName)
	email := sanitizer.TrimToLower(in.Email)

	rules := []validator.Rule{
		validator.ValidNamePart("firstName", firstName, validator.MinFirstNameLen),
		validator.ValidNamePart("lastName", lastName, validator.MinLastNameLen),
		validator.ValidEmail("email", email),
		validator.ValidMobileNumber("phone", in.Phone),
	}
	rules = append(rules, validator.StrongPassword("password", in.Password)...)

	if err := validator.Apply(rules...); err != nil {
		return Registration{}, err
	}

	if err := validator.Apply(
		validator.EqualStrings("confirmPassword", in.ConfirmPassword, in.Password, "password"),
	); err != nil {
		return Registration{}, err
	}

	nameRes := validator.ValidateName(validator.NameParts{
		FirstName: firstName,
		LastName:  lastName,
	})

	return Registration{
		FirstName: sanitizer.NormalizeWhitespace(firstName),
		LastName:  sanitizer.NormalizeWhitespace(lastName),
		Email:     email,
		Phone:     validator.NormalizePhone(in.Phone),
		Password:  in.Password,
		Warnings:  nameRes.Warnings,
	}, nil
}
