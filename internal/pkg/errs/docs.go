// Package errs provides the standardized error types used across the application.
//
// Each error type follows the same pattern: a sentinel error variable (for
// errors.Is classification), a struct carrying the error details, constructor
// functions with and without an underlying cause, an Error() method for
// formatting, and an Unwrap() method returning the sentinel.
//
// The HTTP gateway relies on the sentinels to choose response status codes:
// ErrObjectNotFound maps to 404, the remaining categories to 400.
package errs
