package try

import (
	"errors"
)

// Map applies f to the value of a Success. An error returned by f, or a panic
// inside it, yields a Failure. A Failure is passed through at type S with the
// same cause and f is not called.
func Map[V, S any](t Try[V], f Function[V, S]) (out Try[S]) {
	if !t.ok {
		return failFrom[V, S](t)
	}

	defer capture(&out)

	s, err := f(t.value)
	if err != nil {
		return Failure[S](err)
	}
	return Success(s)
}

// FlatMap applies f to the value of a Success and returns the Try produced by
// f untouched. An error returned by f, or a panic inside it, yields a Failure.
// A Failure is passed through at type S with the same cause and f is not called.
func FlatMap[V, S any](t Try[V], f Function[V, Try[S]]) (out Try[S]) {
	if !t.ok {
		return failFrom[V, S](t)
	}

	defer capture(&out)

	next, err := f(t.value)
	if err != nil {
		return Failure[S](err)
	}
	return next
}

// OnFailure calls consumer when t is a Failure whose cause can be narrowed to
// C with errors.As. C may be a concrete error type or an interface; causes
// wrapping a C also match, and consumer then receives the matched error from
// the wrap chain rather than the outer cause. Errors returned by consumer are
// returned as is.
func OnFailure[C error, V any](t Try[V], consumer Consumer[C]) error {
	if t.ok {
		return nil
	}

	var target C
	if !errors.As(t.err(), &target) {
		return nil
	}
	return consumer(target)
}

// OnFailureIn calls consumer when t is a Failure whose cause belongs to category.
// A nil category matches nothing.
func OnFailureIn[V any](t Try[V], category Category, consumer Consumer[error]) error {
	if t.ok || IsNil(category) || !category.Has(t.err()) {
		return nil
	}
	return consumer(t.err())
}

// Finally collapses t into a single value.
func Finally[V, Out any](t Try[V],
	onSuccess func(v V) Out,
	onFailure func(cause error) Out) Out {

	if t.ok {
		return onSuccess(t.value)
	}
	return onFailure(t.err())
}

// Sequence gathers the values of ts in order, or returns the first Failure.
func Sequence[V any](ts ...Try[V]) Try[[]V] {
	values := make([]V, 0, len(ts))
	for _, t := range ts {
		if !t.ok {
			return failFrom[V, []V](t)
		}
		values = append(values, t.value)
	}
	return Success(values)
}
