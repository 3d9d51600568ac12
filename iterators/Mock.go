package iterators

// NewMock wraps a resumable iterator so individual behaviors can be stubbed in tests.
func NewMock[T any](i Resumable[T]) *Mock[T] {
	return &Mock[T]{
		Resumable:        i,
		StubValue:        i.Value,
		StubClose:        i.Close,
		StubNext:         i.Next,
		StubErr:          i.Err,
		StubCaptureState: i.CaptureState,
		StubRestoreState: i.RestoreState,
	}
}

type Mock[T any] struct {
	Resumable        Resumable[T]
	StubValue        func() T
	StubClose        func() error
	StubNext         func() bool
	StubErr          func() error
	StubCaptureState func() (State, error)
	StubRestoreState func(State) error
}

// wrapper

func (m *Mock[T]) Close() error {
	return m.StubClose()
}

func (m *Mock[T]) Next() bool {
	return m.StubNext()
}

func (m *Mock[T]) Err() error {
	return m.StubErr()
}

func (m *Mock[T]) Value() T {
	return m.StubValue()
}

func (m *Mock[T]) CaptureState() (State, error) {
	return m.StubCaptureState()
}

func (m *Mock[T]) RestoreState(s State) error {
	return m.StubRestoreState(s)
}

// Reseting stubs

func (m *Mock[T]) ResetClose() {
	m.StubClose = m.Resumable.Close
}

func (m *Mock[T]) ResetNext() {
	m.StubNext = m.Resumable.Next
}

func (m *Mock[T]) ResetErr() {
	m.StubErr = m.Resumable.Err
}

func (m *Mock[T]) ResetValue() {
	m.StubValue = m.Resumable.Value
}
