package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/validator"
)

func TestValidateAddress(t *testing.T) {
	base := validator.Address{
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		PINCode: "560001",
		Country: "India",
	}

	t.Run("valid address", func(t *testing.T) {
		res := validator.ValidateAddress(base)
		require.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("independent errors are unioned", func(t *testing.T) {
		addr := base
		addr.Line1 = ""
		addr.City = "City42"
		addr.PINCode = "04001"

		res := validator.ValidateAddress(addr)
		assert.False(t, res.Valid)
		assert.GreaterOrEqual(t, len(res.Errors), 3)
	})

	t.Run("unknown state rejected", func(t *testing.T) {
		addr := base
		addr.State = "Atlantis"
		res := validator.ValidateAddress(addr)
		assert.False(t, res.Valid)
	})

	t.Run("PIN state mismatch is warning only", func(t *testing.T) {
		addr := base
		addr.PINCode = "110001" // Delhi prefix, Karnataka state
		res := validator.ValidateAddress(addr)
		assert.True(t, res.Valid)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "does not appear to belong")
	})

	t.Run("warnings survive alongside errors", func(t *testing.T) {
		addr := base
		addr.Line1 = ""
		addr.PINCode = "777777" // repeated digits warning + W.Bengal prefix mismatch
		res := validator.ValidateAddress(addr)
		assert.False(t, res.Valid)
		assert.NotEmpty(t, res.Warnings)
	})
}

func TestIsIndianState(t *testing.T) {
	assert.True(t, validator.IsIndianState("Karnataka"))
	assert.True(t, validator.IsIndianState("tamil nadu"))
	assert.True(t, validator.IsIndianState(" Delhi "))
	assert.False(t, validator.IsIndianState("Atlantis"))
	assert.False(t, validator.IsIndianState(""))
}
