package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebook/carebook/pkg/sanitizer"
)

func TestSanitizeStruct(t *testing.T) {
	t.Run("sanitizes string leaves", func(t *testing.T) {
		input := map[string]any{
			"note":   "<script>alert(1)</script>checkup",
			"count":  3,
			"active": true,
		}

		result, ok := sanitizer.SanitizeStruct(input).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "checkup", result["note"])
		assert.Equal(t, 3, result["count"])
		assert.Equal(t, true, result["active"])
	})

	t.Run("recurses into nested records and slices", func(t *testing.T) {
		input := map[string]any{
			"patient": map[string]any{
				"name": "<b>Asha</b>",
			},
			"tags": []any{"<i>urgent</i>", 7},
		}

		result := sanitizer.SanitizeStruct(input).(map[string]any)
		patient := result["patient"].(map[string]any)
		assert.Equal(t, "Asha", patient["name"])

		tags := result["tags"].([]any)
		assert.Equal(t, "urgent", tags[0])
		assert.Equal(t, 7, tags[1])
	})

	t.Run("excluded fields pass through untouched", func(t *testing.T) {
		input := map[string]any{
			"id":   "<raw-id>",
			"note": "<b>note</b>",
		}

		result := sanitizer.SanitizeStruct(input, sanitizer.WithExcludedFields("id")).(map[string]any)
		assert.Equal(t, "<raw-id>", result["id"])
		assert.Equal(t, "note", result["note"])
	})

	t.Run("depth limit drops deeply nested values", func(t *testing.T) {
		deep := map[string]any{"leaf": "<b>x</b>"}
		root := deep
		for range 12 {
			root = map[string]any{"nested": root}
		}

		result := sanitizer.SanitizeStruct(root, sanitizer.WithMaxDepth(3))

		// Walk three levels down; beyond the limit values are dropped, not
		// returned unsanitized.
		current := result.(map[string]any)
		for range 3 {
			current = current["nested"].(map[string]any)
		}
		assert.Nil(t, current["nested"])
	})

	t.Run("string slices sanitized in place", func(t *testing.T) {
		input := map[string]any{"symptoms": []string{"<u>fever</u>", "chills"}}
		result := sanitizer.SanitizeStruct(input).(map[string]any)
		assert.Equal(t, []string{"fever", "chills"}, result["symptoms"])
	})

	t.Run("scalar input returned as is", func(t *testing.T) {
		assert.Equal(t, 42, sanitizer.SanitizeStruct(42))
		assert.Equal(t, "clean", sanitizer.SanitizeStruct("<p>clean</p>"))
	})
}

func TestRedactForLog(t *testing.T) {
	t.Run("redacts sensitive field names", func(t *testing.T) {
		input := map[string]any{
			"password":     "hunter2",
			"apiKey":       "pk_live_123",
			"card_number":  "4111111111111111",
			"sessionToken": "abc",
			"note":         "<b>visible</b>",
			"count":        2,
		}

		result := sanitizer.RedactForLog(input)
		assert.Equal(t, sanitizer.RedactedMarker, result["password"])
		assert.Equal(t, sanitizer.RedactedMarker, result["apiKey"])
		assert.Equal(t, sanitizer.RedactedMarker, result["card_number"])
		assert.Equal(t, sanitizer.RedactedMarker, result["sessionToken"])
		assert.Equal(t, "visible", result["note"])
		assert.Equal(t, 2, result["count"])
	})

	t.Run("recurses into nested records", func(t *testing.T) {
		input := map[string]any{
			"auth": map[string]any{
				"refreshToken": "xyz",
				"user":         "asha",
			},
		}

		result := sanitizer.RedactForLog(input)
		auth := result["auth"].(map[string]any)
		assert.Equal(t, sanitizer.RedactedMarker, auth["refreshToken"])
		assert.Equal(t, "asha", auth["user"])
	})

	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, sanitizer.RedactForLog(nil))
	})
}

func TestIsSensitiveFieldName(t *testing.T) {
	assert.True(t, sanitizer.IsSensitiveFieldName("Password"))
	assert.True(t, sanitizer.IsSensitiveFieldName("api_key"))
	assert.True(t, sanitizer.IsSensitiveFieldName("x-authorization-header"))
	assert.False(t, sanitizer.IsSensitiveFieldName("username"))
	assert.False(t, sanitizer.IsSensitiveFieldName("note"))
}
