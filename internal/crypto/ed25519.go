package crypto

import (
	"crypto/ed25519"

	"keyforge/internal/domain"
)

// DeriveEd25519 maps a seed to an Ed25519 key pair. The seed digest is used
// directly as the RFC 8032 private seed.
func DeriveEd25519(seed string, alg domain.DigestAlgorithm) (domain.Ed25519KeyPair, error) {
	digest, err := DigestSeed(seed, alg)
	if err != nil {
		return domain.Ed25519KeyPair{}, err
	}
	defer Wipe(digest[:])

	sk := ed25519.NewKeyFromSeed(digest[:])
	defer Wipe(sk)

	var kp domain.Ed25519KeyPair
	copy(kp.PrivateSeed[:], sk.Seed())
	kp.PublicKey = domain.MustEd25519Public(sk.Public().(ed25519.PublicKey))
	return kp, nil
}

// SignEd25519 signs msg with the key expanded from seed.
func SignEd25519(seed domain.Ed25519Seed, msg []byte) []byte {
	sk := ed25519.NewKeyFromSeed(seed[:])
	defer Wipe(sk)
	return ed25519.Sign(sk, msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub.Slice()), msg, sig)
}
