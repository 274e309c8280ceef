// Package errs provides standardized error types for the fruitmall application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For business-rule violations on state transitions
//   - AccessDeniedError: For missing ownership or role on an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The external layer classifies errors with errors.Is against the sentinels
// and translates them into structured responses carrying stable error codes,
// without leaking internal detail for unexpected faults.
package errs
