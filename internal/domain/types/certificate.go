package types

import (
	"crypto/x509"
	"fmt"
	"strings"
)

// CertificateRequest describes the subject and lifetime of a self-signed
// certificate. Every field is supplied by the caller.
type CertificateRequest struct {
	CommonName   string `json:"common_name" yaml:"common_name"`
	Organization string `json:"organization" yaml:"organization"`
	Country      string `json:"country" yaml:"country"`
	State        string `json:"state" yaml:"state"`
	Locality     string `json:"locality" yaml:"locality"`
	Email        string `json:"email" yaml:"email"`
	ValidityDays int    `json:"validity_days" yaml:"validity_days"`
}

// DefaultCertificateRequest returns a new request with placeholder subject
// fields and a validity of 365 days. Each call returns an independent value.
func DefaultCertificateRequest() CertificateRequest {
	return CertificateRequest{
		CommonName:   "your_domain_name.com",
		Organization: "My Company",
		Country:      "US",
		State:        "California",
		Locality:     "Mountain View",
		Email:        "admin@your_domain_name.com",
		ValidityDays: 365,
	}
}

// Validate reports whether the request can be issued.
func (r CertificateRequest) Validate() error {
	if strings.TrimSpace(r.CommonName) == "" {
		return fmt.Errorf("%w: common name is required", ErrInvalidRequest)
	}
	if r.ValidityDays <= 0 {
		return fmt.Errorf("%w: validity days must be positive, got %d", ErrInvalidRequest, r.ValidityDays)
	}
	if r.Country != "" && len(r.Country) != 2 {
		return fmt.Errorf("%w: country must be a two-letter code, got %q", ErrInvalidRequest, r.Country)
	}
	return nil
}

// IssuedCertificate is the in-memory result of a successful issuance. Nothing
// is written to disk until the caller persists it.
type IssuedCertificate struct {
	PrivatePEM     string
	CertificatePEM string
	Certificate    *x509.Certificate
}
