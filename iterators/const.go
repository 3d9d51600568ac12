package iterators

import "go.llib.dev/resumable/consterr"

const (
	// ErrResourceUnavailable is returned when restoring a resource iterator and
	// the captured name no longer resolves to a readable resource.
	ErrResourceUnavailable consterr.Error = "ResourceUnavailable"
	// ErrStateMismatch is returned when RestoreState receives a State that belongs
	// to a different iterator implementation or violates the iterator's invariant.
	ErrStateMismatch consterr.Error = "StateMismatch"
	// ErrNotIterable is the error of the iterator the dispatcher falls back to
	// when the input has no known way of being iterated.
	ErrNotIterable consterr.Error = "NotIterable"
)
