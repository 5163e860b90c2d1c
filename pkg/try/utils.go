package try

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// recovered turns a panic value into a cause. Errors keep their identity.
func recovered(r any) error {
	if err, ok := r.(error); ok && !IsNil(err) {
		return err
	}
	return ErrPanic.New("%v", r)
}

// capture must be deferred directly so that recover sees the panic.
func capture[S any](out *Try[S]) {
	if r := recover(); r != nil {
		*out = Failure[S](recovered(r))
	}
}
