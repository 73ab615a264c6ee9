// Package errs provides standardized error types for the grubdash application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by every guard and repository in the service.
//
// The package includes the error types a request can fail with:
//   - ObjectNotFoundError: a referenced record is absent from its collection
//   - ValueIsRequiredError: a required payload field is missing or empty
//   - ValueIsInvalidError: a payload field is present but violates a rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method returning the human-readable message
//   - Unwrap() method for errors.Is support against the sentinel
//
// KindOf folds every error into one of the two client-facing kinds,
// KindNotFound and KindBadRequest, so the HTTP boundary renders them
// without knowing the concrete types. MessageOf returns the text a client
// sees, leaving out any internal cause.
package errs
