package types

import "errors"

var (
	// ErrInvalidSeed is returned when the seed is empty or only white space.
	ErrInvalidSeed = errors.New("seed must not be empty")

	// ErrInvalidRequest is returned when a certificate request fails validation.
	ErrInvalidRequest = errors.New("invalid certificate request")

	// ErrGenerationFailure wraps any lower-level cryptographic failure: prime
	// search exhaustion, signing failure or entropy source failure.
	ErrGenerationFailure = errors.New("key generation failed")
)
