package crypto

import (
	cryptorand "crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"io"
	"math/big"
	"time"

	"keyforge/internal/domain"
)

// ClockSkew backdates NotBefore so peers with slow clocks accept the certificate.
const ClockSkew = 24 * time.Hour

// oidEmailAddress is PKCS#9 emailAddress.
var oidEmailAddress = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}

// SubjectName builds the distinguished name for req. Empty fields are omitted.
func SubjectName(req domain.CertificateRequest) pkix.Name {
	var name pkix.Name
	if req.Country != "" {
		name.Country = []string{req.Country}
	}
	if req.State != "" {
		name.Province = []string{req.State}
	}
	if req.Locality != "" {
		name.Locality = []string{req.Locality}
	}
	if req.Organization != "" {
		name.Organization = []string{req.Organization}
	}
	name.CommonName = req.CommonName
	if req.Email != "" {
		name.ExtraNames = []pkix.AttributeTypeAndValue{{Type: oidEmailAddress, Value: req.Email}}
	}
	return name
}

// SelfSignedTemplate returns the certificate body for req: subject equals
// issuer, a CA basic constraint with no path length, and key usage limited to
// digitalSignature, keyEncipherment, keyCertSign and cRLSign. Both extensions
// are marked critical when encoded.
func SelfSignedTemplate(req domain.CertificateRequest, serial *big.Int, now time.Time) *x509.Certificate {
	name := SubjectName(req)
	return &x509.Certificate{
		SerialNumber: serial,
		Subject:      name,
		Issuer:       name,
		NotBefore:    now.Add(-ClockSkew),
		NotAfter:     now.Add(time.Duration(req.ValidityDays) * 24 * time.Hour),

		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            -1,

		KeyUsage: x509.KeyUsageDigitalSignature |
			x509.KeyUsageKeyEncipherment |
			x509.KeyUsageCertSign |
			x509.KeyUsageCRLSign,
		SignatureAlgorithm: x509.SHA256WithRSA,
	}
}

// CreateSelfSigned signs the template for req with key and returns the DER
// bytes together with the parsed certificate. rand supplies the serial number
// and the signing randomness.
func CreateSelfSigned(
	rand io.Reader,
	req domain.CertificateRequest,
	key *rsa.PrivateKey,
	now time.Time,
) ([]byte, *x509.Certificate, error) {
	serial, err := randSerial128(rand)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: serial: %w", domain.ErrGenerationFailure, err)
	}
	tpl := SelfSignedTemplate(req, serial, now.UTC())

	der, err := x509.CreateCertificate(rand, tpl, tpl, &key.PublicKey, key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: sign certificate: %w", domain.ErrGenerationFailure, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse certificate: %w", domain.ErrGenerationFailure, err)
	}
	return der, cert, nil
}

func randSerial128(rand io.Reader) (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := cryptorand.Int(rand, limit)
	if err != nil {
		return nil, err
	}
	// Serial numbers must be positive.
	if serial.Sign() == 0 {
		serial.SetInt64(1)
	}
	return serial, nil
}
