package crypto

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"keyforge/internal/domain"
)

const (
	pemBlockPrivateKey  = "PRIVATE KEY"
	pemBlockPublicKey   = "PUBLIC KEY"
	pemBlockCertificate = "CERTIFICATE"
)

// EncodeRSAKeyPair renders key as a PKCS#8 private PEM and a
// SubjectPublicKeyInfo public PEM.
func EncodeRSAKeyPair(key *rsa.PrivateKey) (domain.RSAKeyPair, error) {
	priv, err := EncodePrivateKeyPEM(key)
	if err != nil {
		return domain.RSAKeyPair{}, err
	}
	pub, err := EncodePublicKeyPEM(&key.PublicKey)
	if err != nil {
		return domain.RSAKeyPair{}, err
	}
	return domain.RSAKeyPair{PrivatePEM: string(priv), PublicPEM: string(pub)}, nil
}

// EncodePrivateKeyPEM marshals key as an unencrypted PKCS#8 PEM block.
func EncodePrivateKeyPEM(key crypto.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal pkcs8: %w", domain.ErrGenerationFailure, err)
	}
	defer Wipe(der)
	return pem.EncodeToMemory(&pem.Block{Type: pemBlockPrivateKey, Bytes: der}), nil
}

// EncodePublicKeyPEM marshals pub as a SubjectPublicKeyInfo PEM block.
func EncodePublicKeyPEM(pub crypto.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal spki: %w", domain.ErrGenerationFailure, err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemBlockPublicKey, Bytes: der}), nil
}

// EncodeCertificatePEM wraps a DER certificate in a PEM block.
func EncodeCertificatePEM(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: pemBlockCertificate, Bytes: der})
}

// ParsePrivateKeyPEM decodes a PKCS#8 PEM block.
func ParsePrivateKeyPEM(b []byte) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("no PEM data found")
	}
	if block.Type != pemBlockPrivateKey {
		return nil, fmt.Errorf("got unexpected block type %q for private key", block.Type)
	}
	return x509.ParsePKCS8PrivateKey(block.Bytes)
}

// ParsePublicKeyPEM decodes the public key found in b. Both "PUBLIC KEY" and
// "CERTIFICATE" blocks are accepted.
func ParsePublicKeyPEM(b []byte) (crypto.PublicKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("no PEM data found")
	}
	switch block.Type {
	case pemBlockPublicKey:
		return x509.ParsePKIXPublicKey(block.Bytes)
	case pemBlockCertificate:
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("error parsing certificate: %w", err)
		}
		return cert.PublicKey, nil
	default:
		return nil, fmt.Errorf("got unexpected block type %q for public key", block.Type)
	}
}

// ParseCertificatePEM decodes a single "CERTIFICATE" block.
func ParseCertificatePEM(b []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("no PEM data found")
	}
	if block.Type != pemBlockCertificate {
		return nil, fmt.Errorf("got unexpected block type %q for certificate", block.Type)
	}
	return x509.ParseCertificate(block.Bytes)
}
