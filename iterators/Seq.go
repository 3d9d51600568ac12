package iterators

import "iter"

// FromSeq adapts a push style iter.Seq into the pull based Iterator contract.
// The resulting iterator is single use and carries no resumable state;
// it is the host-native fallback of the dispatcher.
func FromSeq[T any](src iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(src)
	return &seqIter[T]{next: next, stop: stop}
}

// ToSeq adapts an Iterator into an iter.Seq for range-over-func consumers.
// Err still belongs to the iterator and should be checked after the loop.
func ToSeq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer i.Close()
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
	val  T
	done bool
}

func (i *seqIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, ok := i.next()
	if !ok {
		return false
	}
	i.val = v
	return true
}

func (i *seqIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *seqIter[T]) Err() error {
	return nil
}

func (i *seqIter[T]) Value() T {
	return i.val
}
