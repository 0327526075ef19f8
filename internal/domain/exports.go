package domain

import (
	interfaces "keyforge/internal/domain/interfaces"
	types "keyforge/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint        = types.Fingerprint
	JobID              = types.JobID
	DigestAlgorithm    = types.DigestAlgorithm
	SeedDigest         = types.SeedDigest
	Ed25519Seed        = types.Ed25519Seed
	Ed25519Public      = types.Ed25519Public
	Ed25519KeyPair     = types.Ed25519KeyPair
	RSAKeyPair         = types.RSAKeyPair
	CertificateRequest = types.CertificateRequest
	IssuedCertificate  = types.IssuedCertificate
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService         = interfaces.KeyService
	CertificateService = interfaces.CertificateService
	PairStore          = interfaces.PairStore
)

// Digest algorithms.
const (
	DigestSHA256     = types.DigestSHA256
	DigestSHA3_256   = types.DigestSHA3_256
	DigestBLAKE2b256 = types.DigestBLAKE2b256
)

// Error sentinels.
var (
	ErrInvalidSeed       = types.ErrInvalidSeed
	ErrInvalidRequest    = types.ErrInvalidRequest
	ErrGenerationFailure = types.ErrGenerationFailure
)

// DefaultCertificateRequest returns a new request populated with placeholder
// subject fields and a one-year validity.
func DefaultCertificateRequest() CertificateRequest {
	return types.DefaultCertificateRequest()
}

// MustEd25519Public converts b into an Ed25519Public and panics on a size mismatch.
func MustEd25519Public(b []byte) Ed25519Public {
	return types.MustEd25519Public(b)
}

// ParseDigestAlgorithm resolves a digest name such as "sha256".
func ParseDigestAlgorithm(name string) (DigestAlgorithm, error) {
	return types.ParseDigestAlgorithm(name)
}
