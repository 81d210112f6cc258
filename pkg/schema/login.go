package schema

import (
	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// LoginInput carries the raw login form values.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login is the accepted login payload.
type Login struct {
	Email    string
	Password string
}

// ParseLogin validates a login form. Password strength is not re-checked
// on login; only presence matters here.
func ParseLogin(in LoginInput) (Login, error) {
	email := sanitizer.TrimToLower(in.Email)

	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.Required("password", in.Password),
	); err != nil {
		return Login{}, err
	}

	return Login{Email: email, Password: in.Password}, nil
}
