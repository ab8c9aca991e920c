package dhash

// Hashable is implemented by types that know how to hash themselves.
//
// Composite types will usually feed themselves field by field into the
// provided state in Xxh3, and keep an internal Hasher (or call HashBytes
// for flat types) in Xxh3Digest.
type Hashable interface {
	// Xxh3 feeds this value's hash contribution into state.
	Xxh3(state *Hasher)

	// Xxh3Digest computes this value's digest in whichever way the
	// implementation chooses to.
	Xxh3Digest() uint64
}

// OptimizedHashable is implemented by types with a materially faster
// hashing path than the generic incremental one, typically a fixed-width
// binary layout written in a single bulk Write instead of field by field.
type OptimizedHashable interface {
	HashOptimized(state *Hasher)
}

// Wrapper is a transparent single-field adapter letting a Hashable value
// stand wherever the generic hashing contract is expected, delegating to
// the wrapped value's ordinary hashing behavior.
type Wrapper[T Hashable] struct {
	Value T
}

func Wrap[T Hashable](value T) Wrapper[T] {
	return Wrapper[T]{Value: value}
}

func (w Wrapper[T]) Xxh3(state *Hasher) {
	w.Value.Xxh3(state)
}

func (w Wrapper[T]) Xxh3Digest() uint64 {
	return w.Value.Xxh3Digest()
}
