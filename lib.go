package dhash

import "github.com/zeebo/xxh3"

// HashBytes hashes a byte slice in one shot, keyed with the built-in
// secret. Deterministic across processes.
func HashBytes(bytes []byte) uint64 {
	return xxh3.HashSeed(bytes, builtinKey)
}

// HashBytesDefault hashes a byte slice in one shot with xxh3's default
// keying and seed 0. Not interchangeable with HashBytes, the two use
// distinct keying material and digest the same input differently.
func HashBytesDefault(bytes []byte) uint64 {
	return xxh3.Hash(bytes)
}

// HashItem hashes a single item with a fresh default-keyed Hasher.
//
// NOTE: this builds a new Hasher on every call. Prefer reusing a single
// Hasher for repeated hashing, or HashBytes when the item is already a
// byte slice.
func HashItem(item Hashable) uint64 {
	hasher := NewDefault()
	item.Xxh3(hasher)

	return hasher.Sum64()
}
