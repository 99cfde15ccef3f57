// Package ordered provides an insertion-ordered map, used throughout the
// resolver and emitter so that dispatch tables, field lists, and variant
// case lists iterate in a stable, deterministic order — required for the
// emitter to produce byte-identical output across runs.
package ordered

import "github.com/openrepublic/go-jitabi/internal/iterate"

// Map is an ordered map of key-value pairs. Use [Map.All] to iterate over
// pairs in the order they were first inserted. The zero value is ready
// to use. Methods on Map are not safe for concurrent use.
type Map[K comparable, V any] struct {
	order []K
	index map[K]int
	items map[K]V
}

// Get returns the value for k, or the zero value of V if absent.
func (m *Map[K, V]) Get(k K) (v V) {
	v, _ = m.GetOK(k)
	return v
}

// GetOK returns the value for k and whether k is present.
func (m *Map[K, V]) GetOK(k K) (v V, ok bool) {
	v, ok = m.items[k]
	return v, ok
}

// Set sets the value of k to v, appending k to the end if it is new.
// It returns true if k was already present.
func (m *Map[K, V]) Set(k K, v V) (replaced bool) {
	if m.items == nil {
		m.items = make(map[K]V)
		m.index = make(map[K]int)
	}
	if _, ok := m.items[k]; ok {
		m.items[k] = v
		return true
	}
	m.index[k] = len(m.order)
	m.order = append(m.order, k)
	m.items[k] = v
	return false
}

// Delete removes k from m. It returns true if k was present.
func (m *Map[K, V]) Delete(k K) (deleted bool) {
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.items, k)
	delete(m.index, k)
	m.order = append(m.order[:i], m.order[i+1:]...)
	for j := i; j < len(m.order); j++ {
		m.index[m.order[j]] = j
	}
	return true
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return len(m.items)
}

// Keys returns the keys of m in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// All calls yield for every pair in m, in insertion order, stopping early
// if yield returns false.
func (m *Map[K, V]) All() iterate.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.items[k]) {
				return
			}
		}
	}
}
