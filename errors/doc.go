// Package errors provides structured error types for the lendcell library.
//
// Errors are categorized by Phase (which operation was running) and Kind
// (what went wrong). The Error type carries the Go type name of the lent
// value, the lend cycle it belongs to, and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLend, errors.KindAlreadyLent).
//		TypeName("*pgx.Conn").
//		Seq(3).
//		Detail("cell %q is already lent", "primary").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AlreadyLent(errors.PhaseLend, "*pgx.Conn", 3)
//	err := errors.Released("*pgx.Conn", 3)
//
// Contract violations (lending twice, touching a dropped handle) are raised
// as panics whose value is an *Error, so a recovering caller can inspect
// them with errors.As. All errors implement the standard error interface and
// support errors.Is/As.
package errors
