package try

// Supplier produces a value or fails.
type Supplier[V any] func() (V, error)

// Function maps a T to an R or fails.
type Function[T, R any] func(in T) (R, error)

// Consumer accepts a T. A returned error is propagated by the inspection
// that invoked the consumer.
type Consumer[T any] func(in T) error

// Category is a runtime descriptor of a family of causes. *errs.Class from
// github.com/zeebo/errs satisfies it, as does the matcher returned by Is.
type Category interface {
	// Has reports whether err belongs to the category
	Has(err error) bool
}
