// Package iterate provides small helpers for building iterator sequences
// ([Seq], [Seq2]) over the graph of resolved ABI declarations, so that
// callers can stop a walk early without the producer needing to know why.
package iterate

// Seq is a sequence of values of type V that a consumer can stop early by
// returning false from yield.
type Seq[V any] func(yield func(V) bool)

// Seq2 is a sequence of key-value pairs.
type Seq2[K, V any] func(yield func(K, V) bool)

// Done wraps yield and calls done when yield returns false.
func Done[V any](yield func(V) bool, done func()) func(V) bool {
	return func(v V) bool {
		if !yield(v) {
			done()
			return false
		}
		return true
	}
}

// Once wraps yield to ensure each unique value is only yielded once.
func Once[V comparable](yield func(V) bool) func(V) bool {
	m := make(map[V]struct{})
	return func(v V) bool {
		if _, ok := m[v]; ok {
			return true
		}
		m[v] = struct{}{}
		return yield(v)
	}
}
