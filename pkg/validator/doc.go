// Package validator provides the domain validators of the booking platform:
// Indian phone numbers, PIN codes, names, addresses, currency amounts, and a
// composable rule engine used by the schema layer.
//
// Two styles coexist by design:
//
//   - Domain validators (ValidatePhone, ValidatePINCode, ValidateName,
//     ValidateAddress, ValidateAmount) are pure functions mapping a raw string
//     to a Result value carrying normalized and formatted forms, errors and
//     advisory warnings. Warnings never flip validity; they exist for caller
//     judgment (region/PIN mismatch, uncommon name).
//
//   - Rule builders (Required, MinLen, ValidEmail, ValidTimeOfDay, ...) return
//     Rule values evaluated with Apply, aggregating failures into a
//     ValidationErrors slice that implements the error interface. The schema
//     layer composes object-shaped contracts from these.
//
// The package holds no state across calls, performs no I/O, and is safe for
// concurrent use.
package validator
