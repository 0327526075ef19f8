package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// JobID identifies one generation or issuance run in logs.
type JobID string

// String returns the string form of the job identifier.
func (id JobID) String() string { return string(id) }
