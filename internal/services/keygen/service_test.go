package keygen_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	kfcrypto "keyforge/internal/crypto"
	"keyforge/internal/domain"
	"keyforge/internal/services/keygen"
	"keyforge/internal/worker"
)

func newService(alg domain.DigestAlgorithm) *keygen.Service {
	return keygen.New(worker.New(2, zerolog.Nop()), alg, kfcrypto.RSAOptions{}, zerolog.Nop())
}

func TestDeriveEd25519_Vector(t *testing.T) {
	svc := newService(domain.DigestSHA256)

	kp, err := svc.DeriveEd25519(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("DeriveEd25519: %v", err)
	}
	if got := kp.PrivateKeyHex(); got != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Fatalf("private key = %s", got)
	}
	if got := kp.PublicKeyHex(); got != "cf74826ffd487a1010bc90950087d8730a3c900fd31baf1f6377f15034590f87" {
		t.Fatalf("public key = %s", got)
	}

	again, err := svc.DeriveEd25519(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("DeriveEd25519 again: %v", err)
	}
	if again != kp {
		t.Fatal("second derivation differs")
	}
}

func TestDeriveEd25519_InvalidSeed(t *testing.T) {
	svc := newService(domain.DigestSHA256)
	for _, seed := range []string{"", "   "} {
		if _, err := svc.DeriveEd25519(context.Background(), seed); !errors.Is(err, domain.ErrInvalidSeed) {
			t.Fatalf("seed %q: err = %v, want ErrInvalidSeed", seed, err)
		}
	}
}

func TestDeriveEd25519_DigestChangesKey(t *testing.T) {
	a, err := newService(domain.DigestSHA256).DeriveEd25519(context.Background(), "seed")
	if err != nil {
		t.Fatalf("sha256: %v", err)
	}
	b, err := newService(domain.DigestSHA3_256).DeriveEd25519(context.Background(), "seed")
	if err != nil {
		t.Fatalf("sha3-256: %v", err)
	}
	if a.PublicKeyHex() == b.PublicKeyHex() {
		t.Fatal("digest algorithm did not change the key")
	}
}

func TestDeriveRSA_DeterministicAndUsable(t *testing.T) {
	if testing.Short() {
		t.Skip("RSA-2048 prime search")
	}
	svc := newService(domain.DigestSHA256)

	a, err := svc.DeriveRSA(context.Background(), "service seed")
	if err != nil {
		t.Fatalf("DeriveRSA: %v", err)
	}
	b, err := svc.DeriveRSA(context.Background(), "service seed")
	if err != nil {
		t.Fatalf("DeriveRSA again: %v", err)
	}
	if a != b {
		t.Fatal("RSA derivation is not deterministic")
	}

	privAny, err := kfcrypto.ParsePrivateKeyPEM([]byte(a.PrivatePEM))
	if err != nil {
		t.Fatalf("parse private: %v", err)
	}
	priv := privAny.(*rsa.PrivateKey)
	pubAny, err := kfcrypto.ParsePublicKeyPEM([]byte(a.PublicPEM))
	if err != nil {
		t.Fatalf("parse public: %v", err)
	}
	pub := pubAny.(*rsa.PublicKey)
	if pub.N.BitLen() != 2048 {
		t.Fatalf("modulus bits = %d, want 2048", pub.N.BitLen())
	}

	digest := sha256.Sum256([]byte("payload"))
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestDeriveRSA_InvalidSeed(t *testing.T) {
	_, err := newService(domain.DigestSHA256).DeriveRSA(context.Background(), "\t")
	if !errors.Is(err, domain.ErrInvalidSeed) {
		t.Fatalf("err = %v, want ErrInvalidSeed", err)
	}
}

func TestDeriveRSA_CancelledContext(t *testing.T) {
	// One slot, held by a long job, so the next call must wait for it.
	pool := worker.New(1, zerolog.Nop())
	svc := keygen.New(pool, domain.DigestSHA256, kfcrypto.RSAOptions{}, zerolog.Nop())

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = worker.Submit(context.Background(), pool, worker.NewJob("hold", func() (int, error) {
			close(started)
			<-release
			return 0, nil
		}))
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.DeriveRSA(ctx, "seed"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
