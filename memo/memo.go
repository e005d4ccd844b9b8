package memo

// Table is an explicit cache from K to V.
type Table[K comparable, V any] struct {
	values map[K]V
}

// NewTable returns an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{values: make(map[K]V)}
}

// Get returns the cached value for k, if any.
func (t *Table[K, V]) Get(k K) (V, bool) {
	v, ok := t.values[k]
	return v, ok
}

// Put stores v under k, replacing any previous value.
func (t *Table[K, V]) Put(k K, v V) {
	if t.values == nil {
		t.values = make(map[K]V)
	}
	t.values[k] = v
}

// Len returns the number of cached entries.
func (t *Table[K, V]) Len() int { return len(t.values) }

// Lookup returns the cached value for k, computing and storing it on a miss.
func (t *Table[K, V]) Lookup(k K, compute func(K) V) V {
	if v, ok := t.values[k]; ok {
		return v
	}
	v := compute(k)
	t.Put(k, v)

	return v
}

// Memoize returns fn wrapped with a private cache.
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	t := NewTable[K, V]()
	return func(k K) V {
		return t.Lookup(k, fn)
	}
}

// Recursive memoizes a self-referential function. fn receives the memoized
// function as self and must recurse through it.
func Recursive[K comparable, V any](fn func(self func(K) V, k K) V) func(K) V {
	return RecursiveWith(NewTable[K, V](), fn)
}

// RecursiveWith is Recursive backed by a caller-owned table.
func RecursiveWith[K comparable, V any](t *Table[K, V], fn func(self func(K) V, k K) V) func(K) V {
	var self func(K) V
	self = func(k K) V {
		if v, ok := t.Get(k); ok {
			return v
		}
		v := fn(self, k)
		t.Put(k, v)

		return v
	}

	return self
}
