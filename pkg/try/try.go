package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Try is either a Success holding a value or a Failure holding a cause.
// The zero Try is a Failure caused by ErrNilCause.
type Try[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	cause     error
	ok        bool
}

// Success wraps value without invoking anything.
func Success[V any](value V) Try[V] {
	return Try[V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		ok:        true,
	}
}

// Failure wraps cause. A nil cause is replaced by ErrNilCause.
func Failure[V any](cause error) Try[V] {
	if IsNil(cause) {
		cause = ErrNilCause
	}
	return Try[V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     cause,
	}
}

// Of invokes supplier once. A returned error or a panic becomes the cause of
// a Failure; otherwise the supplied value becomes a Success.
func Of[V any](supplier Supplier[V]) (out Try[V]) {
	defer capture(&out)

	v, err := supplier()
	if err != nil {
		return Failure[V](err)
	}
	return Success(v)
}

// From lifts a (value, error) pair: a non-nil err gives a Failure.
func From[V any](value V, err error) Try[V] {
	if err != nil {
		return Failure[V](err)
	}
	return Success(value)
}

// failFrom re-types a Failure keeping its cause and trace metadata.
func failFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		cause:     from.err(),
	}
}

func (t Try[V]) err() error {
	if !t.ok && t.cause == nil {
		return ErrNilCause
	}
	return t.cause
}

func (t Try[V]) IsSuccess() bool {
	return t.ok
}

func (t Try[V]) IsFailure() bool {
	return !t.ok
}

// ToOptional drops the cause of a Failure.
func (t Try[V]) ToOptional() Optional[V] {
	if t.ok {
		return Some(t.value)
	}
	return None[V]()
}

// Get returns the value of a Success or the zero value and the cause of a Failure.
func (t Try[V]) Get() (V, error) {
	if t.ok {
		return t.value, nil
	}
	var zero V
	return zero, t.err()
}

// Cause is nil for a Success.
func (t Try[V]) Cause() error {
	return t.err()
}

func (t Try[V]) OrElse(fallback V) V {
	if t.ok {
		return t.value
	}
	return fallback
}

// ID identifies the outcome. A Failure passed along a chain keeps the ID of
// the step that first failed.
func (t Try[V]) ID() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t Try[V]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[V]) String() string {
	if t.ok {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.err())
}

// OnSuccess calls consumer with the value of a Success and returns whatever
// the consumer returns. It does nothing for a Failure.
func (t Try[V]) OnSuccess(consumer Consumer[V]) error {
	if !t.ok {
		return nil
	}
	return consumer(t.value)
}

// OnAnyFailure calls consumer with the cause of a Failure, whatever its type.
func (t Try[V]) OnAnyFailure(consumer Consumer[error]) error {
	if t.ok {
		return nil
	}
	return consumer(t.err())
}
