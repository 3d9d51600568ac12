package iterators

import "fmt"

// Slice returns an iterator over the given slice.
// The slice is shared with the iterator by reference, never copied,
// so element mutations made before exhaustion are visible through Value.
func Slice[T any](slice []T) *SliceIter[T] {
	return &SliceIter[T]{Slice: slice}
}

// ResumeSlice rebuilds a slice iterator from a previously captured state.
func ResumeSlice[T any](state SliceState[T]) (*SliceIter[T], error) {
	i := &SliceIter[T]{}
	if err := i.RestoreState(state); err != nil {
		return nil, err
	}
	return i, nil
}

type SliceIter[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

// SliceState is the snapshot of a SliceIter: the shared slice reference plus the
// position index. Invariant: 0 <= Position <= len(Slice).
type SliceState[T any] struct {
	Slice    []T `json:"sequence"`
	Position int `json:"position"`
}

func (SliceState[T]) Kind() string { return "slice" }

func (i *SliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceIter[T]) Err() error {
	return nil
}

func (i *SliceIter[T]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.Slice) <= i.index {
		return false
	}
	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceIter[T]) Value() T {
	return i.value
}

func (i *SliceIter[T]) CaptureState() (State, error) {
	return SliceState[T]{Slice: i.Slice, Position: i.index}, nil
}

func (i *SliceIter[T]) RestoreState(s State) error {
	state, ok := stateAs[SliceState[T]](s)
	if !ok {
		return fmt.Errorf("%w: %T is not a slice state", ErrStateMismatch, s)
	}
	if state.Position < 0 || len(state.Slice) < state.Position {
		return fmt.Errorf("%w: position %d out of range", ErrStateMismatch, state.Position)
	}
	i.Slice = state.Slice
	i.index = state.Position
	i.closed = false
	return nil
}
