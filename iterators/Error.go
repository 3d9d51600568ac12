package iterators

// Error returns an iterator that has no values and only reports the given error.
// The dispatcher uses it as the downstream failure path for inputs that cannot
// be iterated at all.
func Error[T any](err error) *ErrorIter[T] {
	return &ErrorIter[T]{err}
}

type ErrorIter[T any] struct {
	err error
}

func (i *ErrorIter[T]) Close() error {
	return nil
}

func (i *ErrorIter[T]) Next() bool {
	return false
}

func (i *ErrorIter[T]) Err() error {
	return i.err
}

func (i *ErrorIter[T]) Value() T {
	var v T
	return v
}
