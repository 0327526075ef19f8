package types

import (
	"fmt"
	"strings"
)

// DigestAlgorithm names the 256-bit hash used for seed digests and for the
// deterministic byte stream. Changing it changes every derived key.
type DigestAlgorithm string

const (
	DigestSHA256     DigestAlgorithm = "sha256"
	DigestSHA3_256   DigestAlgorithm = "sha3-256"
	DigestBLAKE2b256 DigestAlgorithm = "blake2b-256"
)

// String returns the canonical algorithm name.
func (a DigestAlgorithm) String() string { return string(a) }

// ParseDigestAlgorithm resolves name case-insensitively. An empty name selects
// SHA-256.
func ParseDigestAlgorithm(name string) (DigestAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha256", "sha-256":
		return DigestSHA256, nil
	case "sha3-256", "sha3":
		return DigestSHA3_256, nil
	case "blake2b-256", "blake2b":
		return DigestBLAKE2b256, nil
	default:
		return "", fmt.Errorf("unsupported digest algorithm %q", name)
	}
}

// SeedDigest is the 32-byte hash of a normalized seed.
type SeedDigest [32]byte
