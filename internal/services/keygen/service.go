package keygen

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"keyforge/internal/crypto"
	"keyforge/internal/domain"
	"keyforge/internal/worker"
)

// Service derives Ed25519 and RSA key pairs from seeds.
type Service struct {
	pool *worker.Pool
	alg  domain.DigestAlgorithm
	rsa  crypto.RSAOptions
	log  zerolog.Logger
}

// New returns a key service running derivations on pool.
func New(pool *worker.Pool, alg domain.DigestAlgorithm, rsaOpts crypto.RSAOptions, log zerolog.Logger) *Service {
	if alg == "" {
		alg = domain.DigestSHA256
	}
	return &Service{
		pool: pool,
		alg:  alg,
		rsa:  rsaOpts,
		log:  log.With().Str("component", "keygen").Logger(),
	}
}

// DeriveEd25519 returns the Ed25519 key pair for seed.
func (s *Service) DeriveEd25519(ctx context.Context, seed string) (domain.Ed25519KeyPair, error) {
	if _, err := crypto.NormalizeSeed(seed); err != nil {
		return domain.Ed25519KeyPair{}, err
	}

	job := worker.NewJob("derive-ed25519", func() (domain.Ed25519KeyPair, error) {
		return crypto.DeriveEd25519(seed, s.alg)
	})
	start := time.Now()
	kp, err := worker.Submit(ctx, s.pool, job)
	if err != nil {
		return domain.Ed25519KeyPair{}, err
	}

	s.log.Info().
		Str("op", "derive_ed25519").
		Str("job_id", job.ID.String()).
		Str("digest", s.alg.String()).
		Str("fingerprint", crypto.Fingerprint(kp.PublicKey.Slice()).String()).
		Dur("duration", time.Since(start)).
		Msg("derived key pair")
	return kp, nil
}

// DeriveRSA returns the RSA-2048 key pair for seed. Repeated calls with the
// same seed return byte-identical PEM as long as crypto.RSAAlgorithmVersion
// is unchanged.
func (s *Service) DeriveRSA(ctx context.Context, seed string) (domain.RSAKeyPair, error) {
	if _, err := crypto.NormalizeSeed(seed); err != nil {
		return domain.RSAKeyPair{}, err
	}

	job := worker.NewJob("derive-rsa", func() (domain.RSAKeyPair, error) {
		return crypto.DeriveRSA(seed, s.alg, s.rsa)
	})
	start := time.Now()
	kp, err := worker.Submit(ctx, s.pool, job)
	if err != nil {
		return domain.RSAKeyPair{}, err
	}

	ev := s.log.Info().
		Str("op", "derive_rsa").
		Str("job_id", job.ID.String()).
		Str("digest", s.alg.String()).
		Int("algorithm_version", crypto.RSAAlgorithmVersion).
		Dur("duration", time.Since(start))
	if pub, perr := crypto.ParsePublicKeyPEM([]byte(kp.PublicPEM)); perr == nil {
		if fp, ferr := crypto.FingerprintPublicKey(pub); ferr == nil {
			ev = ev.Str("fingerprint", fp.String())
		}
	}
	ev.Msg("derived key pair")
	return kp, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
