package dhash

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

/*
Hasher is a 64-bit xxh3 hasher with explicit seed and secret handling.

It can serve as the hash backend of an associative container (see
HasherBuilder), with these properties worth calling out:
- output is stable by default, no per-process randomization
- state can be reset without rebuilding the whole hasher
- keying can come from a seed, a 192-byte secret, or both

A Hasher is owned by a single caller at a time, there is no internal
locking. It exclusively owns its engine: the seed and secret recorded on
it always describe the configuration that produced the current engine,
the two are only ever replaced together.
*/
type Hasher struct {
	engine *xxh3.Hasher
	seed   uint64
	secret []byte // nil when keyed by seed alone
}

// New creates a Hasher keyed by seed alone, no secret.
func New(seed uint64) *Hasher {
	return &Hasher{
		engine: xxh3.NewSeed(seed),
		seed:   seed,
	}
}

// NewDefault creates a Hasher keyed with the built-in secret, seed
// recorded as 0. The engine seed actually in effect is folded from the
// secret and is non-zero, so default output is not trivially predictable
// from a zero seed.
func NewDefault() *Hasher {
	return &Hasher{
		engine: xxh3.NewSeed(builtinKey),
		secret: builtinSecret,
	}
}

// NewLibraryDefault creates a Hasher with xxh3's own default keying,
// seed recorded as 0. Digests differ from NewDefault ones, the two
// keying materials are distinct.
func NewLibraryDefault() *Hasher {
	return &Hasher{
		engine: xxh3.New(),
	}
}

// NewWithSecret creates a Hasher keyed with the given secret and seed 0.
// The secret must be exactly SecretSize bytes, it is copied so the caller
// may reuse its buffer.
func NewWithSecret(secret []byte) (*Hasher, error) {
	return NewWithSecretAndSeed(secret, 0)
}

// NewWithSecretAndSeed creates a Hasher keyed with both the given secret
// and an explicit seed. The secret must be exactly SecretSize bytes.
func NewWithSecretAndSeed(secret []byte, seed uint64) (*Hasher, error) {
	if len(secret) != SecretSize {
		return nil, &InvalidSecretSizeError{Size: len(secret)}
	}

	owned := make([]byte, SecretSize)
	copy(owned, secret)

	return &Hasher{
		engine: xxh3.NewSeed(foldSecret(owned, seed)),
		seed:   seed,
		secret: owned,
	}, nil
}

// Seed returns the seed this hasher was configured with.
func (h *Hasher) Seed() uint64 {
	return h.seed
}

// Write feeds bytes into the running hash. It never fails and always
// returns len(p). Boundaries are insignificant: writing [a] then [b]
// digests the same as writing a+b in one call.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.engine.Write(p)
}

// Sum64 returns the digest of everything written so far. It does not
// disturb the running state, further writes continue from the current
// value and Sum64 can be called again.
func (h *Hasher) Sum64() uint64 {
	return h.engine.Sum64()
}

// Reset returns the current digest, then discards all accumulated input.
// The seed and secret configuration stays in effect, the hasher behaves
// as freshly constructed.
func (h *Hasher) Reset() uint64 {
	digest := h.engine.Sum64()
	h.engine.Reset()

	return digest
}

// ChangeSeed rebuilds the hasher with the given seed, retaining whichever
// secret was in effect (built-in or custom, none for seed-only hashers).
//
// NOTE: all accumulated input is lost.
func (h *Hasher) ChangeSeed(seed uint64) {
	if h.secret != nil {
		h.engine = xxh3.NewSeed(foldSecret(h.secret, seed))
	} else {
		h.engine = xxh3.NewSeed(seed)
	}
	h.seed = seed
}

// Combine mixes a previously computed digest into the running state,
// composing hashes of sub-structures without re-hashing their raw bytes.
func (h *Hasher) Combine(other uint64) {
	var buf [8]byte
	le.PutUint64(buf[:], other)
	h.engine.Write(buf[:])
}

// HashBatch feeds each item into the running state in sequence order and
// returns the cumulative digest. Permuting items generally changes the
// result.
func (h *Hasher) HashBatch(items []Hashable) uint64 {
	for _, item := range items {
		item.Xxh3(h)
	}

	return h.engine.Sum64()
}

// HashOptimized dispatches to value's specialized fast hashing path.
func (h *Hasher) HashOptimized(value OptimizedHashable) {
	value.HashOptimized(h)
}

// Clone returns an independent copy carrying the full running state and
// configuration, further writes to either side do not affect the other.
func (h *Hasher) Clone() *Hasher {
	engine := *h.engine

	// Secrets are immutable once installed, sharing the slice is fine.
	return &Hasher{
		engine: &engine,
		seed:   h.seed,
		secret: h.secret,
	}
}

func (h *Hasher) String() string {
	return fmt.Sprintf("Hasher(hash: %d, seed: %d)", h.engine.Sum64(), h.seed)
}
