// Package try provides Try[V], the outcome of an operation that may fail:
// either a Success holding a value or a Failure holding the captured cause.
//
// Construction:
// - Of: run a Supplier once and capture its value, error or panic
// - Success/Failure: wrap an explicit value or cause
// - From: lift a Go (value, error) pair
//
// Transformations (Map, FlatMap) recover errors and panics raised by their
// function argument into a Failure, so a chain needs no error check between
// steps. Once a chain holds a Failure every later step is a pass-through and
// the first cause is the only one observable.
//
// Inspections (OnSuccess, OnFailure, OnFailureIn, OnAnyFailure) run side
// effects at the end of a chain. Errors returned by their consumers are handed
// back to the caller unchanged and panics are not recovered.
//
// Everything runs synchronously on the caller's goroutine. A Try is immutable
// and may be read from several goroutines at once.
package try
