package dhash

import (
	"hash/maphash"

	"go.uber.org/zap"
)

// HasherBuilder is the factory contract an associative container consumes
// to obtain one Hasher per hashing operation it performs.
type HasherBuilder interface {
	BuildHasher() *Hasher
}

var (
	_ HasherBuilder = Builder{}
	_ HasherBuilder = (*RandomBuilder)(nil)
)

// Builder produces hashers keyed with the built-in secret and seed 0.
// Every hasher it produces is configured identically, so equal inputs
// digest equally across hashers, containers and processes.
type Builder struct{}

func (Builder) BuildHasher() *Hasher {
	return NewDefault()
}

// RandomBuilder produces hashers keyed with a seed drawn from process
// entropy once, at builder construction. All hashers from one builder
// share that seed, keeping a single container internally consistent,
// while hashers from two independently constructed builders digest the
// same input differently with overwhelming probability.
type RandomBuilder struct {
	seed uint64
}

func NewRandomBuilder() *RandomBuilder {
	builder := &RandomBuilder{seed: randomSeed()}
	if tracer.Enabled() {
		zlog.Debug("sampled process entropy for randomized builder", zap.Uint64("seed", builder.seed))
	}

	return builder
}

// NewRandomBuilderWithSeed pins the builder's seed instead of sampling
// entropy, for reproducing randomized behavior in tests.
func NewRandomBuilderWithSeed(seed uint64) *RandomBuilder {
	return &RandomBuilder{seed: seed}
}

// Seed returns the seed every hasher from this builder is keyed with.
func (b *RandomBuilder) Seed() uint64 {
	return b.seed
}

func (b *RandomBuilder) BuildHasher() *Hasher {
	return New(b.seed)
}

// randomSeed derives a 64-bit seed by hashing a fixed-content buffer with
// the platform's process-random-keyed primitive.
func randomSeed() uint64 {
	var fixed [64]byte

	return maphash.Bytes(maphash.MakeSeed(), fixed[:])
}
