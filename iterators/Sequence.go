package iterators

import (
	"fmt"
	"reflect"
)

// Sequence returns an iterator over an arbitrary indexable ordered container,
// using reflection instead of generics so heterogeneous runtime inputs
// (numeric slices, arrays, anything the dispatcher hands over) share one wrapper.
// The container is referenced, not copied. Non-indexable input panics.
func Sequence(seq any) *SequenceIter {
	i := &SequenceIter{}
	i.bind(seq)
	return i
}

// ResumeSequence rebuilds a sequence iterator from a previously captured state.
func ResumeSequence(state SequenceState) (*SequenceIter, error) {
	i := &SequenceIter{}
	if err := i.RestoreState(state); err != nil {
		return nil, err
	}
	return i, nil
}

type SequenceIter struct {
	seq    any
	rv     reflect.Value
	closed bool
	index  int
	value  any
}

// SequenceState is the snapshot of a SequenceIter: the shared container
// reference plus the position index.
type SequenceState struct {
	Seq      any `json:"sequence"`
	Position int `json:"position"`
}

func (SequenceState) Kind() string { return "sequence" }

func (i *SequenceIter) bind(seq any) {
	rv := reflect.ValueOf(seq)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		panic("TypeError")
	}
	i.seq = seq
	i.rv = rv
}

func (i *SequenceIter) Close() error {
	i.closed = true
	return nil
}

func (i *SequenceIter) Err() error {
	return nil
}

func (i *SequenceIter) Next() bool {
	if i.closed {
		return false
	}
	if i.rv.Len() <= i.index {
		return false
	}
	i.value = i.rv.Index(i.index).Interface()
	i.index++
	return true
}

func (i *SequenceIter) Value() any {
	return i.value
}

func (i *SequenceIter) CaptureState() (State, error) {
	return SequenceState{Seq: i.seq, Position: i.index}, nil
}

func (i *SequenceIter) RestoreState(s State) error {
	state, ok := stateAs[SequenceState](s)
	if !ok {
		return fmt.Errorf("%w: %T is not a sequence state", ErrStateMismatch, s)
	}
	rv := reflect.ValueOf(state.Seq)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return fmt.Errorf("%w: %T is not an indexable sequence", ErrStateMismatch, state.Seq)
	}
	if state.Position < 0 || rv.Len() < state.Position {
		return fmt.Errorf("%w: position %d out of range", ErrStateMismatch, state.Position)
	}
	i.seq = state.Seq
	i.rv = rv
	i.index = state.Position
	i.closed = false
	return nil
}
