// Package certificate issues self-signed X.509 certificates.
//
// # Flow
//
//  1. Validate the CertificateRequest.
//  2. Generate a fresh RSA-2048 key from the configured entropy source. No
//     seed is involved; two issuances never share a key.
//  3. Build the subject (C, ST, L, O, CN, emailAddress) and use it as the
//     issuer as well.
//  4. Set NotBefore one day in the past and NotAfter ValidityDays ahead.
//  5. Attach critical BasicConstraints (CA, no path length) and critical
//     KeyUsage (digitalSignature, keyEncipherment, keyCertSign, cRLSign).
//  6. Self-sign with SHA256WithRSA and return key and certificate as PEM.
//
// Issue works entirely in memory. Persisting the result is left to a
// domain.PairStore, which writes both files or neither.
//
// # Errors
//
// domain.ErrInvalidRequest for a bad request. Every cryptographic failure
// wraps domain.ErrGenerationFailure; retrying issues a brand-new key.
package certificate
