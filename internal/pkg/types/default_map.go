package types

// DefaultMap is a map wrapper that materializes missing entries with a
// user-provided default function, removing the need for key existence
// checks at call sites.
//
//	m := NewDefaultMap[string](func() int { return 0 })
//	count := m.Get("key") // 0 when "key" is absent, now stored
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates a DefaultMap whose missing entries are produced by
// defaultFunc.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value for key, creating and storing a default value if
// the key is not present.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key, replacing any existing entry.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// ToMap exposes the underlying map for iteration or bulk reads.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
