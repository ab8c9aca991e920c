package dhash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

var le = binary.LittleEndian

// SecretSize is the exact number of bytes of keying material accepted by
// NewWithSecret and NewWithSecretAndSeed. Any other length is rejected
// with InvalidSecretSizeError, never truncated or padded.
const SecretSize = 192

// builtinSecretSeed parameterizes the derivation of the built-in secret.
const builtinSecretSeed uint64 = 0xDEADBEEFFEEDF00D

var (
	builtinSecret = deriveSecret(builtinSecretSeed)

	// builtinKey is the engine seed in effect for hashers keyed with the
	// built-in secret and seed 0.
	builtinKey = foldSecret(builtinSecret, 0)
)

// deriveSecret expands a 64-bit seed into SecretSize bytes of keying
// material, stable across builds and platforms.
func deriveSecret(seed uint64) []byte {
	out := make([]byte, SecretSize)

	var counter [8]byte
	for i := 0; i < SecretSize/8; i++ {
		le.PutUint64(counter[:], uint64(i))
		le.PutUint64(out[i*8:], xxh3.HashSeed(counter[:], seed+uint64(i)))
	}

	return out
}

// foldSecret reduces keying material and a seed into the single engine
// seed fed to xxh3. Hashers built from the same secret and seed fold to
// the same engine seed, so digests stay deterministic per configuration.
func foldSecret(secret []byte, seed uint64) uint64 {
	return xxh3.HashSeed(secret, seed)
}
