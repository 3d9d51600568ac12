package iterators

import (
	"fmt"
	"iter"
	"os"
	"reflect"
	"sort"
)

// From classifies an arbitrary input and returns the matching resumable wrapper,
// falling back to the host-native way of iterating the value. The rules run in a
// fixed precedence order and the first match wins, since the categories are not
// mutually exclusive by structural type alone. From itself never fails: an input
// nobody can iterate yields an Error iterator whose Err surfaces downstream.
//
// Map keys are materialized in sorted order. Go maps carry no insertion order,
// and a deterministic order is what keeps capture/restore round-trips stable.
func From(v any) Iterator[any] {
	for _, rule := range dispatchRules {
		if rule.match(v) {
			return rule.wrap(v)
		}
	}
	return fallback(v)
}

type dispatchRule struct {
	match func(any) bool
	wrap  func(any) Iterator[any]
}

var dispatchRules = []dispatchRule{
	{match: isKind(reflect.Map), wrap: wrapMapKeys},
	{match: isType[*GzipFile](), wrap: func(v any) Iterator[any] { return asAny[string](Gzip(v.(*GzipFile))) }},
	{match: isType[*os.File](), wrap: func(v any) Iterator[any] { return asAny[string](File(v.(*os.File))) }},
	{match: isKind(reflect.Slice, reflect.Array), wrap: func(v any) Iterator[any] { return Sequence(v) }},
	{match: isKind(reflect.String), wrap: wrapString},
}

func isKind(kinds ...reflect.Kind) func(any) bool {
	return func(v any) bool {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return false
		}
		for _, kind := range kinds {
			if rv.Kind() == kind {
				return true
			}
		}
		return false
	}
}

func isType[T any]() func(any) bool {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}

func wrapMapKeys(v any) Iterator[any] {
	rv := reflect.ValueOf(v)
	keys := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface())
	}
	sortKeys(keys)
	return Slice(keys)
}

func wrapString(v any) Iterator[any] {
	// strings are immutable, so materializing the runes cannot break
	// the reference semantics the mutable sequence wrappers promise
	return asAny[rune](Slice([]rune(reflect.ValueOf(v).String())))
}

func fallback(v any) Iterator[any] {
	switch src := v.(type) {
	case Iterator[any]:
		return src
	case iter.Seq[any]:
		return FromSeq(src)
	}
	if rv := reflect.ValueOf(v); rv.IsValid() && rv.Kind() == reflect.Chan {
		return Func(func() (any, bool, error) {
			val, ok := rv.Recv()
			if !ok {
				return nil, false, nil
			}
			return val.Interface(), true, nil
		})
	}
	return Error[any](fmt.Errorf("%w: %T", ErrNotIterable, v))
}

// asAny adapts a typed resumable iterator into the heterogeneous return type of
// the dispatcher, keeping the capture/restore protocol reachable behind it.
func asAny[T any](i Resumable[T]) Resumable[any] {
	return &anyIter[T]{typed: i}
}

type anyIter[T any] struct{ typed Resumable[T] }

func (i *anyIter[T]) Close() error { return i.typed.Close() }
func (i *anyIter[T]) Err() error   { return i.typed.Err() }
func (i *anyIter[T]) Next() bool   { return i.typed.Next() }
func (i *anyIter[T]) Value() any   { return i.typed.Value() }

func (i *anyIter[T]) CaptureState() (State, error) { return i.typed.CaptureState() }
func (i *anyIter[T]) RestoreState(s State) error   { return i.typed.RestoreState(s) }

// sortKeys orders materialized map keys without assuming a single key type.
func sortKeys(keys []any) {
	sort.Slice(keys, func(a, b int) bool { return keyLess(keys[a], keys[b]) })
}

func keyLess(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != bv.Kind() {
		return av.Kind() < bv.Kind()
	}
	switch av.Kind() {
	case reflect.String:
		return av.String() < bv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return av.Int() < bv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return av.Uint() < bv.Uint()
	case reflect.Float32, reflect.Float64:
		return av.Float() < bv.Float()
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}
