package sanitizer

// DefaultMaxDepth bounds recursion into nested records so adversarial deeply
// nested payloads cannot cause unbounded work.
const DefaultMaxDepth = 10

// StructOption configures SanitizeStruct.
type StructOption func(*structOptions)

type structOptions struct {
	maxDepth int
	exclude  map[string]bool
}

// WithMaxDepth overrides the recursion limit.
func WithMaxDepth(depth int) StructOption {
	return func(o *structOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithExcludedFields names fields whose values pass through untouched,
// e.g. identifiers that have already been validated.
func WithExcludedFields(fields ...string) StructOption {
	return func(o *structOptions) {
		for _, f := range fields {
			o.exclude[f] = true
		}
	}
}

// SanitizeStruct walks an arbitrary nested record (maps, slices, strings,
// primitives) and applies the strict text policy to every string leaf.
// Non-string primitives are returned unchanged. Values nested deeper than the
// recursion limit are dropped.
func SanitizeStruct(value any, opts ...StructOption) any {
	options := &structOptions{
		maxDepth: DefaultMaxDepth,
		exclude:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(options)
	}
	return sanitizeValue(value, options, 0)
}

func sanitizeValue(value any, options *structOptions, depth int) any {
	if depth > options.maxDepth {
		return nil
	}

	switch v := value.(type) {
	case string:
		return SanitizeText(v)
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, nested := range v {
			if options.exclude[key] {
				result[key] = nested
				continue
			}
			result[key] = sanitizeValue(nested, options, depth+1)
		}
		return result
	case map[string]string:
		result := make(map[string]string, len(v))
		for key, nested := range v {
			if options.exclude[key] {
				result[key] = nested
				continue
			}
			result[key] = SanitizeText(nested)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, nested := range v {
			result[i] = sanitizeValue(nested, options, depth+1)
		}
		return result
	case []string:
		result := make([]string, len(v))
		for i, nested := range v {
			result[i] = SanitizeText(nested)
		}
		return result
	default:
		return value
	}
}
