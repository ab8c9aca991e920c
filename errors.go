package dhash

import "fmt"

// InvalidSecretSizeError is returned by the secret-accepting constructors
// when the given keying material is not exactly SecretSize bytes long.
// No hasher state is created when it is returned.
type InvalidSecretSizeError struct {
	// Size is the length of the rejected secret.
	Size int
}

func (e *InvalidSecretSizeError) Error() string {
	return fmt.Sprintf("invalid secret size: accepting exactly %d bytes, got %d", SecretSize, e.Size)
}
