package crypto

import (
	"crypto"
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"

	"keyforge/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

// FingerprintPublicKey fingerprints pub. Ed25519 keys are hashed raw, every
// other key type over its SubjectPublicKeyInfo encoding.
func FingerprintPublicKey(pub crypto.PublicKey) (domain.Fingerprint, error) {
	if edPub, ok := pub.(ed25519.PublicKey); ok {
		return Fingerprint(edPub), nil
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", err
	}
	return Fingerprint(der), nil
}
