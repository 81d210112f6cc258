package schema

import (
	"github.com/carebook/carebook/pkg/sanitizer"
	"github.com/carebook/carebook/pkg/validator"
)

// ProfileUpdateInput carries the raw profile form values. All fields are
// optional; empty fields are left untouched by the update.
type ProfileUpdateInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PINCode      string `json:"pinCode"`
}

// ProfileUpdate is the accepted profile payload. Zero-valued fields mean
// "no change". Warnings carry advisory findings (PIN/state mismatch,
// uncommon name) that do not block the update.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Address   *validator.Address
	Warnings  []string
}

func (p ProfileUpdate) HasAddress() bool { return p.Address != nil }

// ParseProfileUpdate validates whichever profile fields are present.
// Address fields are all-or-nothing: supplying any of them requires a
// complete, valid address.
func ParseProfileUpdate(in ProfileUpdateInput) (ProfileUpdate, error) {
	var errs validator.ValidationErrors
	var warnings []string

	out := ProfileUpdate{}

	if firstName := sanitizer.Trim(in.FirstName); firstName != "" {
		if err := validator.Apply(validator.ValidNamePart("firstName", firstName, validator.MinFirstNameLen)); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
		} else {
			out.FirstName = sanitizer.NormalizeWhitespace(firstName)
		}
	}
	if lastName := sanitizer.Trim(in.LastName); lastName != "" {
		if err := validator.Apply(validator.ValidNamePart("lastName", lastName, validator.MinLastNameLen)); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
		} else {
			out.LastName = sanitizer.NormalizeWhitespace(lastName)
		}
	}

	if sanitizer.Trim(in.Phone) != "" {
		res := validator.ValidatePhone(in.Phone)
		if res.Type != validator.PhoneMobile {
			errs.Add(validator.ValidationError{
				Field:          "phone",
				Message:        firstOr(res.Errors, "Please enter a valid mobile number"),
				TranslationKey: "validation.mobile_number",
			})
		} else {
			out.Phone = res.Normalized
		}
	}

	if hasAddressInput(in) {
		addr := validator.Address{
			Line1:   sanitizer.SanitizeText(in.AddressLine1),
			Line2:   sanitizer.SanitizeText(in.AddressLine2),
			City:    sanitizer.Trim(in.City),
			State:   sanitizer.Trim(in.State),
			PINCode: sanitizer.Trim(in.PINCode),
			Country: "India",
		}
		res := validator.ValidateAddress(addr)
		for _, msg := range res.Errors {
			errs.Add(validator.ValidationError{
				Field:          "address",
				Message:        msg,
				TranslationKey: "validation.address",
			})
		}
		warnings = append(warnings, res.Warnings...)
		if res.Valid {
			out.Address = &addr
		}
	}

	if !errs.IsEmpty() {
		return ProfileUpdate{}, errs
	}

	out.Warnings = warnings
	return out, nil
}

func hasAddressInput(in ProfileUpdateInput) bool {
	for _, v := range []string{in.AddressLine1, in.AddressLine2, in.City, in.State, in.PINCode} {
		if sanitizer.Trim(v) != "" {
			return true
		}
	}
	return false
}

func firstOr(msgs []string, fallback string) string {
	if len(msgs) > 0 {
		return msgs[0]
	}
	return fallback
}
