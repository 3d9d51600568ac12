package iterators

import "fmt"

// Range returns an iterator over the numbers from start towards stop (exclusive),
// advancing by step. A negative step counts downwards. A zero step panics.
func Range(start, stop, step int) *RangeIter {
	if step == 0 {
		panic("TypeError")
	}
	return &RangeIter{start: start, stop: stop, step: step, next: start}
}

// ResumeRange rebuilds a range iterator from a previously captured state.
func ResumeRange(state RangeState) (*RangeIter, error) {
	i := &RangeIter{}
	if err := i.RestoreState(state); err != nil {
		return nil, err
	}
	return i, nil
}

type RangeIter struct {
	start, stop, step int

	next   int
	closed bool
	value  int
}

// RangeState is the snapshot of a RangeIter: the range definition plus the cursor.
type RangeState struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Step  int `json:"step"`
	Next  int `json:"next"`
}

func (RangeState) Kind() string { return "range" }

func (i *RangeIter) Close() error {
	i.closed = true
	return nil
}

func (i *RangeIter) Err() error {
	return nil
}

func (i *RangeIter) Next() bool {
	if i.closed {
		return false
	}
	if i.step > 0 && i.stop <= i.next {
		return false
	}
	if i.step < 0 && i.next <= i.stop {
		return false
	}
	i.value = i.next
	i.next += i.step
	return true
}

func (i *RangeIter) Value() int {
	return i.value
}

func (i *RangeIter) CaptureState() (State, error) {
	return RangeState{Start: i.start, Stop: i.stop, Step: i.step, Next: i.next}, nil
}

func (i *RangeIter) RestoreState(s State) error {
	state, ok := stateAs[RangeState](s)
	if !ok {
		return fmt.Errorf("%w: %T is not a range state", ErrStateMismatch, s)
	}
	if state.Step == 0 {
		return fmt.Errorf("%w: zero step", ErrStateMismatch)
	}
	i.start = state.Start
	i.stop = state.Stop
	i.step = state.Step
	i.next = state.Next
	i.closed = false
	return nil
}
