package types_test

import (
	"errors"
	"testing"

	"keyforge/internal/domain/types"
)

func TestParseDigestAlgorithm(t *testing.T) {
	cases := map[string]types.DigestAlgorithm{
		"":            types.DigestSHA256,
		"SHA-256":     types.DigestSHA256,
		" sha3 ":      types.DigestSHA3_256,
		"blake2b-256": types.DigestBLAKE2b256,
	}
	for in, want := range cases {
		got, err := types.ParseDigestAlgorithm(in)
		if err != nil {
			t.Fatalf("ParseDigestAlgorithm(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDigestAlgorithm(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := types.ParseDigestAlgorithm("md5"); err == nil {
		t.Fatal("expected md5 to be rejected")
	}
}

func TestDefaultCertificateRequestIsValid(t *testing.T) {
	req := types.DefaultCertificateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("default request invalid: %v", err)
	}
	if req.ValidityDays != 365 {
		t.Fatalf("validity = %d, want 365", req.ValidityDays)
	}
}

func TestCertificateRequestValidate(t *testing.T) {
	base := types.CertificateRequest{CommonName: "example.com", ValidityDays: 1}

	bad := []func(r *types.CertificateRequest){
		func(r *types.CertificateRequest) { r.CommonName = "" },
		func(r *types.CertificateRequest) { r.ValidityDays = 0 },
		func(r *types.CertificateRequest) { r.ValidityDays = -5 },
		func(r *types.CertificateRequest) { r.Country = "USA" },
	}
	for i, mutate := range bad {
		req := base
		mutate(&req)
		err := req.Validate()
		if !errors.Is(err, types.ErrInvalidRequest) {
			t.Fatalf("case %d: err = %v, want ErrInvalidRequest", i, err)
		}
	}

	ok := base
	ok.Country = "DE"
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestEd25519KeyPairHex(t *testing.T) {
	var kp types.Ed25519KeyPair
	kp.PrivateSeed[0] = 0xab
	kp.PublicKey[31] = 0x01
	if got := kp.PrivateKeyHex(); len(got) != 64 || got[:2] != "ab" {
		t.Fatalf("PrivateKeyHex = %q", got)
	}
	if got := kp.PublicKeyHex(); got[62:] != "01" {
		t.Fatalf("PublicKeyHex = %q", got)
	}
}

func TestMustEd25519Public(t *testing.T) {
	b := make([]byte, 32)
	b[0] = 0x7f
	pub := types.MustEd25519Public(b)

	got := pub.Slice()
	got[0] = 0
	if pub[0] != 0x7f {
		t.Fatal("Slice aliases the key")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a 31-byte key")
		}
	}()
	types.MustEd25519Public(b[:31])
}
