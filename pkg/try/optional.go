package try

// Optional holds zero or one value.
type Optional[V any] struct {
	value   V
	present bool
}

func Some[V any](value V) Optional[V] {
	return Optional[V]{value: value, present: true}
}

func None[V any]() Optional[V] {
	return Optional[V]{}
}

func (o Optional[V]) IsPresent() bool {
	return o.present
}

func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

func (o Optional[V]) OrElse(fallback V) V {
	if o.present {
		return o.value
	}
	return fallback
}
