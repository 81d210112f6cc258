package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/validator"
)

func TestValidateName(t *testing.T) {
	t.Run("simple valid name", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			FirstName: "Priya",
			LastName:  "Sharma",
		})
		require.True(t, res.Valid)
		assert.Equal(t, "Priya Sharma", res.Normalized)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("apostrophes and hyphens allowed", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			FirstName: "Mary-Jane",
			LastName:  "O'Brien",
		})
		assert.True(t, res.Valid)
	})

	t.Run("digits rejected", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			FirstName: "John123",
			LastName:  "Doe",
		})
		assert.False(t, res.Valid)
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0], "letters, spaces, hyphens and apostrophes")
	})

	t.Run("violations are collected, not short-circuited", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			FirstName:  "J",          // too short
			LastName:   "",           // required
			MiddleName: "abc123!@#$", // bad charclass
		})
		assert.False(t, res.Valid)
		assert.GreaterOrEqual(t, len(res.Errors), 3)
	})

	t.Run("length ceilings", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			FirstName: strings.Repeat("a", 51),
			LastName:  "Rao",
		})
		assert.False(t, res.Valid)
	})

	t.Run("uncommon first name warns without failing", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			FirstName: "Zyxwvut",
			LastName:  "Rao",
		})
		assert.True(t, res.Valid)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "uncommon")
	})

	t.Run("recognized titles accepted", func(t *testing.T) {
		for _, title := range []string{"Mr", "Mrs.", "Dr", "ms"} {
			res := validator.ValidateName(validator.NameParts{
				Title:     title,
				FirstName: "Asha",
				LastName:  "Nair",
			})
			assert.True(t, res.Valid, "title: %s", title)
		}
	})

	t.Run("unknown title rejected", func(t *testing.T) {
		res := validator.ValidateName(validator.NameParts{
			Title:     "Captain",
			FirstName: "Asha",
			LastName:  "Nair",
		})
		assert.False(t, res.Valid)
	})
}

func TestValidNamePartRule(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidNamePart("firstName", "O'Brien", 2)))
	assert.Error(t, validator.Apply(validator.ValidNamePart("firstName", "John123", 2)))
	assert.Error(t, validator.Apply(validator.ValidNamePart("firstName", "J", 2)))
}
