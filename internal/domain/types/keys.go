package types

import (
	"encoding/hex"
	"fmt"
)

// Ed25519Seed is the 32-byte RFC 8032 private key seed.
type Ed25519Seed [32]byte

// Ed25519Public is an Ed25519 public key.
type Ed25519Public [32]byte

// Slice returns a copy of the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// MustEd25519Public converts b into an Ed25519Public and panics on a size mismatch.
func MustEd25519Public(b []byte) Ed25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("ed25519 public: want 32 bytes, got %d", len(b)))
	}
	var out Ed25519Public
	copy(out[:], b)
	return out
}

// Ed25519KeyPair is a seed-derived Ed25519 key pair.
type Ed25519KeyPair struct {
	PrivateSeed Ed25519Seed   `json:"private_seed"`
	PublicKey   Ed25519Public `json:"public_key"`
}

// PrivateKeyHex returns the private seed as lowercase hex.
func (k Ed25519KeyPair) PrivateKeyHex() string { return hex.EncodeToString(k.PrivateSeed[:]) }

// PublicKeyHex returns the public key as lowercase hex.
func (k Ed25519KeyPair) PublicKeyHex() string { return hex.EncodeToString(k.PublicKey[:]) }

// RSAKeyPair holds PEM-encoded RSA key material: the private key as a PKCS#8
// "PRIVATE KEY" block and the public key as a SubjectPublicKeyInfo
// "PUBLIC KEY" block.
type RSAKeyPair struct {
	PrivatePEM string `json:"private_pem"`
	PublicPEM  string `json:"public_pem"`
}
