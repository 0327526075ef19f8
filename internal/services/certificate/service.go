package certificate

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"keyforge/internal/crypto"
	"keyforge/internal/domain"
	"keyforge/internal/worker"
)

// Service issues self-signed certificates on the worker pool.
type Service struct {
	pool *worker.Pool
	log  zerolog.Logger

	rand io.Reader
	now  func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithRand replaces crypto/rand as the entropy source.
func WithRand(r io.Reader) Option { return func(s *Service) { s.rand = r } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// New returns a certificate service running on pool.
func New(pool *worker.Pool, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		pool: pool,
		log:  log.With().Str("component", "certificate").Logger(),
		rand: rand.Reader,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a key and a self-signed certificate for req.
func (s *Service) Issue(ctx context.Context, req domain.CertificateRequest) (domain.IssuedCertificate, error) {
	if err := req.Validate(); err != nil {
		return domain.IssuedCertificate{}, err
	}

	job := worker.NewJob("issue-certificate", func() (domain.IssuedCertificate, error) {
		return s.issue(req)
	})
	start := time.Now()
	out, err := worker.Submit(ctx, s.pool, job)
	if err != nil {
		return domain.IssuedCertificate{}, err
	}

	fp, _ := crypto.FingerprintPublicKey(out.Certificate.PublicKey)
	s.log.Info().
		Str("op", "issue_certificate").
		Str("job_id", job.ID.String()).
		Str("subject", out.Certificate.Subject.String()).
		Str("serial", out.Certificate.SerialNumber.Text(16)).
		Time("not_after", out.Certificate.NotAfter).
		Str("fingerprint", fp.String()).
		Dur("duration", time.Since(start)).
		Msg("issued self-signed certificate")
	return out, nil
}

func (s *Service) issue(req domain.CertificateRequest) (domain.IssuedCertificate, error) {
	key, err := rsa.GenerateKey(s.rand, crypto.RSABits)
	if err != nil {
		return domain.IssuedCertificate{}, fmt.Errorf("%w: generate key: %w", domain.ErrGenerationFailure, err)
	}

	der, cert, err := crypto.CreateSelfSigned(s.rand, req, key, s.now())
	if err != nil {
		return domain.IssuedCertificate{}, err
	}

	keyPEM, err := crypto.EncodePrivateKeyPEM(key)
	if err != nil {
		return domain.IssuedCertificate{}, err
	}
	return domain.IssuedCertificate{
		PrivatePEM:     string(keyPEM),
		CertificatePEM: string(crypto.EncodeCertificatePEM(der)),
		Certificate:    cert,
	}, nil
}

// IssueAndSave issues a certificate and persists it through ps. Nothing is
// written unless issuance succeeds, and ps writes both files or neither.
func (s *Service) IssueAndSave(
	ctx context.Context,
	req domain.CertificateRequest,
	ps domain.PairStore,
) (out domain.IssuedCertificate, keyPath, certPath string, err error) {
	out, err = s.Issue(ctx, req)
	if err != nil {
		return domain.IssuedCertificate{}, "", "", err
	}
	keyPath, certPath, err = ps.SavePair([]byte(out.PrivatePEM), []byte(out.CertificatePEM))
	if err != nil {
		return domain.IssuedCertificate{}, "", "", err
	}
	s.log.Info().
		Str("op", "save_certificate").
		Str("key_path", keyPath).
		Str("cert_path", certPath).
		Msg("wrote key and certificate")
	return out, keyPath, certPath, nil
}

// Compile-time assertion that Service implements domain.CertificateService.
var _ domain.CertificateService = (*Service)(nil)
