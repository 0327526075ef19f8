package app

import (
	"github.com/rs/zerolog"

	"keyforge/internal/crypto"
	"keyforge/internal/services/certificate"
	"keyforge/internal/services/keygen"
	"keyforge/internal/store"
	"keyforge/internal/worker"
)

// Wire bundles all services and stores for the CLI.
type Wire struct {
	Log   zerolog.Logger
	Pool  *worker.Pool
	Keys  *keygen.Service
	Certs *certificate.Service

	cfg Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	s := cfg.Settings
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := NewLogger(s.LogLevel, s.LogFormat, cfg.Logs)

	// One pool shared by every service, so RSA derivations and certificate
	// issuance compete for the same CPU budget.
	pool := worker.New(s.Workers, log)

	keys := keygen.New(pool, s.DigestAlgorithm(), crypto.RSAOptions{MaxCandidates: s.RSA.MaxCandidates}, log)
	certs := certificate.New(pool, log)

	log.Debug().
		Int("workers", pool.Size()).
		Str("digest", s.DigestAlgorithm().String()).
		Msg("wired services")

	return &Wire{
		Log:   log,
		Pool:  pool,
		Keys:  keys,
		Certs: certs,
		cfg:   cfg,
	}, nil
}

// CertificateStore returns the store for key + certificate under dir. An
// empty dir selects the configured output directory.
func (w *Wire) CertificateStore(dir string) *store.PairFileStore {
	out := w.cfg.Settings.Output
	if dir == "" {
		dir = out.Dir
	}
	return store.NewPairFileStore(dir, out.KeyFile, out.CertFile)
}

// RSAStore returns the store for a derived RSA key pair under dir.
func (w *Wire) RSAStore(dir string) *store.PairFileStore {
	out := w.cfg.Settings.Output
	if dir == "" {
		dir = out.Dir
	}
	return store.NewPairFileStore(dir, out.RSAKeyFile, out.PublicFile)
}
