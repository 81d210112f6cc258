package sanitizer

// Apply runs a value through a chain of transformations.
// Useful for building sanitization pipelines while keeping type safety.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable sanitization pipeline.
// Preferred over repeated Apply calls when the same chain is used in several
// places, e.g. the per-field cleanup chains in the schema layer.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
