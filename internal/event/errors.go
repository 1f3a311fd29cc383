package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event bus. They are raised as panics: the bus has
// no recoverable failure modes, only producer misuse and internal corruption.
var (
	// ErrInvalidEvent is raised when a nil event or one reporting KindNone is enqueued.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrInconsistentEntry is raised when a drained entry's tag does not match
	// the variant it holds, or names no known variant.
	ErrInconsistentEntry = errors.New("inconsistent queue entry")
)

// EntryError describes a queue entry that failed consistency checks.
type EntryError struct {
	// Tag is the kind recorded when the entry was enqueued.
	Tag Kind

	// Resolved is the kind of the variant actually stored.
	Resolved Kind

	// Value is the stored event value.
	Value any
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("inconsistent queue entry: tag %s, stored %T (%s)", e.Tag, e.Value, e.Resolved)
}

// Is allows errors.Is to match EntryError with ErrInconsistentEntry.
func (e *EntryError) Is(target error) bool {
	return target == ErrInconsistentEntry
}
