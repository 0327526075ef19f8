// Package store provides file-based persistence for generated key material.
//
// PairFileStore writes a private key together with its public key or
// certificate. Both files are staged as temp files in the target directory and
// renamed into place only after both are fully written, so a failed run never
// leaves one without the other. Private keys are written with mode 0600,
// public halves with 0644.
//
// Nothing here encrypts key material: private keys are stored as unencrypted
// PKCS#8 PEM, exactly as returned by the generators.
package store
