// Package apperrors defines the error taxonomy and exit codes of the
// ctcalc application.
//
// The library packages (ctint, ctbuf, ctbool, ctenc) never return
// errors: arithmetic failure is expressed as a NaN output, detected with
// IsNaN. The types in this package cover the application layer around
// them (configuration problems, oracle mismatches, cancellation), where
// regular Go error handling applies.
package apperrors
