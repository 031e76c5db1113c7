// Package errs provides standardized error types for the order lifecycle service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: an order, mapping, or audit trail does not exist
//   - ActionIsForbiddenError: an actor role may not submit an event
//   - EventIsInvalidError: an event name is not declared by the topology
//   - TransitionIsInvalidError: no such transition, or the transition would not advance the order
//   - StateIsInvalidError: the order is terminal, or not in the state an operation requires
//   - ConcurrencyConflictError: a write lost a race against another writer
//   - StorageFailureError: the backing store is unavailable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// The boundary maps sentinels to caller-visible failures; nothing in this package
// retries or swallows an error.
package errs
