package iterators

// Func enables you to create an iterator with a lambda expression.
func Func[T any](next func() (v T, ok bool, err error)) Iterator[T] {
	return &funcIter[T]{NextFn: next}
}

type funcIter[T any] struct {
	NextFn func() (v T, ok bool, err error)

	value T
	err   error
}

func (i *funcIter[T]) Close() error {
	return nil
}

func (i *funcIter[T]) Err() error {
	return i.err
}

func (i *funcIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	value, ok, err := i.NextFn()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		return false
	}
	i.value = value
	return true
}

func (i *funcIter[T]) Value() T {
	return i.value
}
