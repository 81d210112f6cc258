// Package schema defines the structural contracts for every payload the
// platform accepts from clients. Each payload has a raw Input struct, a
// parsed struct holding normalized and sanitized values, and a Parse
// function that either returns the parsed value or a field-keyed
// validation error.
//
// Parse functions run in two phases: per-field checks first, then
// cross-field refinements (confirmation matches, time ordering) only once
// every field is individually valid. Cross-field failures are reported
// against the dependent field's path.
//
// Free-text fields are sanitized inside Parse, so the values that reach
// storage are always the sanitized ones.
//
// Transport layers fold outcomes into a uniform Envelope:
//
//	resp := schema.Validate(schema.ParseRegistration, input)
//	if !resp.Success {
//		render(resp.Errors)
//	}
package schema
