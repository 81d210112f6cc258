package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		for _, email := range []string{
			"test@example.com",
			"user.name@domain.co.in",
			"user+tag@example.org",
		} {
			assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), "email: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		for _, email := range []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@domain",
			"spaces @domain.com",
			"email@domain..com",
		} {
			err := validator.Apply(validator.ValidEmail("email", email))
			require.Error(t, err, "email: %s", email)
			verrs := validator.ExtractValidationErrors(err)
			require.NotEmpty(t, verrs)
			assert.Equal(t, "validation.email", verrs[0].TranslationKey)
		}
	})
}

func TestValidTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		for _, v := range []string{"00:00", "09:30", "12:00", "23:59"} {
			assert.NoError(t, validator.Apply(validator.ValidTimeOfDay("startTime", v)), "time: %s", v)
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		for _, v := range []string{"25:00", "24:00", "12:60", "9:30", "12:5", "noon", ""} {
			assert.Error(t, validator.Apply(validator.ValidTimeOfDay("startTime", v)), "time: %s", v)
		}
	})
}

func TestValidDate(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidDate("date", "2026-08-29")))
	assert.Error(t, validator.Apply(validator.ValidDate("date", "2026-13-01")))
	assert.Error(t, validator.Apply(validator.ValidDate("date", "29/08/2026")))
	assert.Error(t, validator.Apply(validator.ValidDate("date", "")))
}

func TestTimeBefore(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.TimeBefore("startTime", "09:00", "10:30")))
	assert.Error(t, validator.Apply(validator.TimeBefore("startTime", "10:30", "09:00")))
	assert.Error(t, validator.Apply(validator.TimeBefore("startTime", "10:00", "10:00")))
	assert.Error(t, validator.Apply(validator.TimeBefore("startTime", "bad", "10:00")))
}

func TestStrongPassword(t *testing.T) {
	t.Run("accepts strong password", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.StrongPassword("password", "Str0ngPass")...))
	})

	t.Run("rejects lowercase-only password mentioning uppercase", func(t *testing.T) {
		err := validator.Apply(validator.StrongPassword("password", "password")...)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, verrs)

		var mentionsUppercase bool
		for _, ve := range verrs {
			if ve.TranslationKey == "validation.contains_uppercase" {
				mentionsUppercase = true
				assert.Contains(t, ve.Message, "uppercase")
			}
		}
		assert.True(t, mentionsUppercase)
	})

	t.Run("rejects short password", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.StrongPassword("password", "Ab1")...))
	})

	t.Run("rejects common password", func(t *testing.T) {
		err := validator.Apply(validator.NotCommonPassword("password", "Passw0rd"))
		assert.Error(t, err)
	})
}

func TestApplyCollectsAllFailures(t *testing.T) {
	err := validator.Apply(
		validator.Required("firstName", ""),
		validator.ValidEmail("email", "nope"),
		validator.ValidTimeOfDay("startTime", "25:00"),
	)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	assert.Len(t, verrs, 3)
	assert.ElementsMatch(t, []string{"firstName", "email", "startTime"}, verrs.Fields())
	assert.True(t, verrs.Has("email"))
	assert.True(t, validator.IsValidationError(err))
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.OneOf("status", "Pending", "pending", "confirmed")))
	assert.Error(t, validator.Apply(validator.OneOf("status", "unknown", "pending", "confirmed")))
}

func TestEqualStrings(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.EqualStrings("confirmPassword", "a", "a", "password")))

	err := validator.Apply(validator.EqualStrings("confirmPassword", "a", "b", "password"))
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "confirmPassword", verrs[0].Field)
}
