// Package keygen derives seed-based key pairs for callers.
//
// Both operations validate the seed on the caller's goroutine, so an empty
// seed fails fast with domain.ErrInvalidSeed, and then run the derivation on
// the shared worker pool. Seeds and private keys never reach the log; only
// job ids, the digest algorithm, durations and public-key fingerprints do.
package keygen
