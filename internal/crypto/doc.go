// Package crypto exposes the key-generation primitives used by keyforge.
//
// Contents
//
//   - Seed normalization and digesting (NormalizeSeed, DigestSeed)
//   - A counter-indexed hash stream keyed by a seed digest (ByteStream)
//   - Seed-derived Ed25519 key pairs, signing and verification (DeriveEd25519,
//     SignEd25519, VerifyEd25519)
//   - Seed-derived RSA key pairs built on a versioned prime search
//     (DeriveRSA, GenerateRSA)
//   - Self-signed X.509 certificates (CreateSelfSigned)
//   - PEM encoding helpers and short public-key fingerprints
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Reproducibility
//
// Ed25519 output depends only on the seed and the digest algorithm. RSA output
// additionally depends on the exact sequence of reads the prime search makes
// from the ByteStream; that sequence is pinned by RSAAlgorithmVersion and must
// not change without bumping it.
package crypto
