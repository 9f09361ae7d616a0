package stencil

// ordered is an insertion-ordered map. Re-setting a key replaces its value
// but keeps the position of the first insertion.
type ordered[V any] struct {
	keys   []string
	values map[string]V
}

func (o *ordered[V]) set(key string, value V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *ordered[V]) len() int {
	return len(o.keys)
}

func (o *ordered[V]) each(fn func(key string, value V)) {
	for _, k := range o.keys {
		fn(k, o.values[k])
	}
}
