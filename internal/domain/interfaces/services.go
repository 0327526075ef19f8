package interfaces

import (
	"context"

	domaintypes "keyforge/internal/domain/types"
)

// KeyService derives key pairs from caller-supplied seeds.
type KeyService interface {
	DeriveEd25519(ctx context.Context, seed string) (domaintypes.Ed25519KeyPair, error)
	DeriveRSA(ctx context.Context, seed string) (domaintypes.RSAKeyPair, error)
}

// CertificateService issues self-signed certificates on fresh keys.
type CertificateService interface {
	Issue(
		ctx context.Context,
		req domaintypes.CertificateRequest,
	) (domaintypes.IssuedCertificate, error)
}
