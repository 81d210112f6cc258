package validator

// Result is the outcome of a domain validation. It is produced fresh per call
// and never mutated after return.
//
// Errors block acceptance; Warnings are advisory heuristics (uncommon name,
// region/PIN mismatch) surfaced for caller judgment and never flip Valid.
type Result struct {
	Valid      bool
	Normalized string
	Formatted  string
	Errors     []string
	Warnings   []string
}

func invalidResult(errs ...string) Result {
	return Result{Errors: errs}
}

func validResult(normalized, formatted string, warnings ...string) Result {
	return Result{
		Valid:      true,
		Normalized: normalized,
		Formatted:  formatted,
		Warnings:   warnings,
	}
}
