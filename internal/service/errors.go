package service

import "fmt"

// ValidationError reports bad input: a missing required field, an end
// time not after the start time, or a dangling reference. The message
// always names the violating field. Validation happens before any
// mutation is applied, so a ValidationError means nothing was persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against an id that does not exist.
type NotFoundError struct {
	Kind string // "client", "project" or "time entry"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// AlreadyStoppedError reports an attempt to stop an entry that already
// has an end time.
type AlreadyStoppedError struct {
	ID string
}

func (e *AlreadyStoppedError) Error() string {
	return fmt.Sprintf("time entry %s is already stopped", e.ID)
}

// InvariantViolationError reports that more than one running entry was
// found in the store. This cannot happen when all mutations go through
// the service; it indicates an externally corrupted data file and is
// surfaced rather than auto-repaired.
type InvariantViolationError struct {
	Count int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("data file corrupted: %d entries are running, expected at most one", e.Count)
}

// StorageError wraps a failure of the backing store. In-memory state is
// unchanged when one is returned; callers must not assume a mutation
// succeeded until the save completed.
type StorageError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
