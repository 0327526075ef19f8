package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"keyforge/internal/domain"
)

// NormalizeSeed trims leading and trailing white space from raw and returns
// the UTF-8 bytes of the result. An empty result yields domain.ErrInvalidSeed.
func NormalizeSeed(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, domain.ErrInvalidSeed
	}
	return []byte(trimmed), nil
}

// DigestSeed normalizes raw and hashes it with alg.
func DigestSeed(raw string, alg domain.DigestAlgorithm) (domain.SeedDigest, error) {
	seed, err := NormalizeSeed(raw)
	if err != nil {
		return domain.SeedDigest{}, err
	}
	defer Wipe(seed)

	h, err := newHash(alg)
	if err != nil {
		return domain.SeedDigest{}, err
	}
	_, _ = h.Write(seed)

	var out domain.SeedDigest
	h.Sum(out[:0])
	return out, nil
}

// newHash returns a fresh 256-bit hash for alg. The empty algorithm selects SHA-256.
func newHash(alg domain.DigestAlgorithm) (hash.Hash, error) {
	switch alg {
	case "", domain.DigestSHA256:
		return sha256.New(), nil
	case domain.DigestSHA3_256:
		return sha3.New256(), nil
	case domain.DigestBLAKE2b256:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unsupported digest algorithm %q", alg)
	}
}
