package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrActionIsForbidden   = errors.New("action is forbidden")
	ErrEventIsInvalid      = errors.New("event is invalid")
	ErrTransitionIsInvalid = errors.New("transition is invalid")
	ErrStateIsInvalid      = errors.New("state is invalid")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrStorageFailure      = errors.New("storage failure")
)

// ObjectNotFoundError reports a lookup that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprint(e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports an aggregate version that cannot be persisted or restored.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// NewVersionIsInvalidErrorWithCause keeps the historical (inverted) naming: it builds an error without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
	}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ActionIsForbiddenError reports an actor role that may not perform an action.
type ActionIsForbiddenError struct {
	Role   string
	Action string
	Cause  error
}

func NewActionIsForbiddenError(role, action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{
		Role:   role,
		Action: action,
	}
}

func NewActionIsForbiddenErrorWithCause(role, action string, cause error) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{
		Role:   role,
		Action: action,
		Cause:  cause,
	}
}

func (e *ActionIsForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: %s may not %s", ErrActionIsForbidden, sanitize(e.Role), sanitize(e.Action))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

// EventIsInvalidError reports an event name that is not declared.
type EventIsInvalidError struct {
	Event string
	Cause error
}

func NewEventIsInvalidError(event string) *EventIsInvalidError {
	return &EventIsInvalidError{
		Event: event,
	}
}

func NewEventIsInvalidErrorWithCause(event string, cause error) *EventIsInvalidError {
	return &EventIsInvalidError{
		Event: event,
		Cause: cause,
	}
}

func (e *EventIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrEventIsInvalid, sanitize(e.Event))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *EventIsInvalidError) Unwrap() error {
	return ErrEventIsInvalid
}

// TransitionIsInvalidError reports a (state, event) pair that is undeclared or would not advance.
type TransitionIsInvalidError struct {
	From  string
	Event string
	Cause error
}

func NewTransitionIsInvalidError(from, event string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		From:  from,
		Event: event,
	}
}

func NewTransitionIsInvalidErrorWithCause(from, event string, cause error) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		From:  from,
		Event: event,
		Cause: cause,
	}
}

func (e *TransitionIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s from %s", ErrTransitionIsInvalid, sanitize(e.Event), sanitize(e.From))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}

// StateIsInvalidError reports an operation the current state of an object does not permit.
type StateIsInvalidError struct {
	ParamName string
	State     string
	Cause     error
}

func NewStateIsInvalidError(paramName, state string) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		State:     state,
	}
}

func NewStateIsInvalidErrorWithCause(paramName, state string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		State:     state,
		Cause:     cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s", ErrStateIsInvalid, e.ParamName, sanitize(e.State))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ConcurrencyConflictError reports a write that lost a race against another writer.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConcurrencyConflictError(paramName string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewConcurrencyConflictErrorWithCause(paramName string, id any, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ConcurrencyConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %s was modified concurrently",
		ErrConcurrencyConflict, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// StorageFailureError reports that the backing store could not serve a request.
type StorageFailureError struct {
	Operation string
	Cause     error
}

func NewStorageFailureError(operation string) *StorageFailureError {
	return &StorageFailureError{
		Operation: operation,
	}
}

func NewStorageFailureErrorWithCause(operation string, cause error) *StorageFailureError {
	return &StorageFailureError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StorageFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorageFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageFailure, e.Operation)
}

func (e *StorageFailureError) Unwrap() error {
	return ErrStorageFailure
}

// sanitize flattens values into a single log-safe line.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
