// Package iterators provide resumable iterator implementations.
//
// An Iterator's goal is to decouple the origin of the data from the consumer who
// uses that data. On top of the classic traversal contract, the iterators in this
// package can flatten their current logical position into a minimal State value
// and be rebuilt from that State alone, even when the underlying source is an
// open file or a stacked text decoder reading from one. This lets a long-running
// computation checkpoint mid-iteration and continue later from the same point,
// without re-materializing the already consumed elements.
package iterators

import "io"

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// State is the minimal structural snapshot from which a Resumable iterator can be
// exactly rebuilt. A State never carries a live resource handle; resource identity
// travels as name+offset+mode, and the handle gets re-acquired on restore.
type State interface {
	// Kind identifies which iterator implementation the State belongs to.
	Kind() string
}

// Resumable is an Iterator that supports the capture/restore protocol.
//
// The contract is a round-trip guarantee: consuming k values, capturing, restoring
// into a fresh iterator and consuming the remainder yields the same tail sequence
// as consuming straight through.
type Resumable[V any] interface {
	Iterator[V]
	// CaptureState flattens the iterator's current position into a State.
	// It must be called before any further consumption happens.
	CaptureState() (State, error)
	// RestoreState rebuilds the iterator position from a previously captured State.
	// Restoration is atomic: on failure the iterator is left untouched.
	RestoreState(State) error
}

// stateAs unpacks a State into the concrete type an iterator expects,
// accepting both the value and the pointer form (the pointer form is what
// a serialization envelope decodes into).
func stateAs[S State](s State) (S, bool) {
	if v, ok := s.(S); ok {
		return v, true
	}
	if v, ok := any(s).(*S); ok {
		return *v, true
	}
	var zero S
	return zero, false
}
