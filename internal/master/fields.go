package master

// Fields is one project's data: field key to value, in sheet row order.
type Fields struct {
	keys   []string
	values map[string]any
}

func newFields() *Fields {
	return &Fields{values: make(map[string]any)}
}

// set stores v under key. A repeated key keeps its first position.
func (f *Fields) set(key string, v any) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = v
}

// Get returns the value stored under key.
func (f *Fields) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the field keys in row order.
func (f *Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of fields.
func (f *Fields) Len() int { return len(f.keys) }
