// Package commands defines the keyforge CLI and wires dependencies for subcommands.
//
// Commands
//
//   - ed25519      Derive an Ed25519 key pair from a seed
//   - rsa          Derive an RSA-2048 key pair from a seed
//   - cert         Issue a self-signed certificate on a fresh RSA-2048 key
//   - fingerprint  Print the short fingerprint of a PEM public key or certificate
//   - version      Print the derivation parameters
//
// # Implementation
//
// The root command loads keyforge.yaml (--config or KEYFORGE_CONFIG), applies
// KEYFORGE_* environment overrides and then flag overrides, and builds the
// dependency graph (logger, worker pool, services) before any subcommand runs.
// Results go to stdout; logs go to stderr.
package commands
