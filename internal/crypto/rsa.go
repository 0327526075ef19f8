package crypto

import (
	"crypto/rsa"
	"fmt"
	"math/big"

	"keyforge/internal/domain"
)

const (
	// RSAAlgorithmVersion pins the prime search below. Any change to how
	// candidates are drawn, masked or tested must bump it, since it changes
	// every seed-derived RSA key.
	RSAAlgorithmVersion = 1

	RSABits              = 2048
	RSAPublicExponent    = 65537
	DefaultMaxCandidates = 1 << 16

	millerRabinRounds = 20
	maxPrimeRedraws   = 8
)

// RSAOptions tunes GenerateRSA. Zero values select the defaults.
type RSAOptions struct {
	Bits          int
	MaxCandidates int
}

func (o RSAOptions) withDefaults() RSAOptions {
	if o.Bits == 0 {
		o.Bits = RSABits
	}
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	return o
}

// DeriveRSA builds a 2048-bit RSA key pair whose primes are drawn from a
// ByteStream keyed by the seed digest.
func DeriveRSA(seed string, alg domain.DigestAlgorithm, opts RSAOptions) (domain.RSAKeyPair, error) {
	digest, err := DigestSeed(seed, alg)
	if err != nil {
		return domain.RSAKeyPair{}, err
	}
	stream, err := NewByteStream(digest, alg)
	Wipe(digest[:])
	if err != nil {
		return domain.RSAKeyPair{}, err
	}
	defer stream.Wipe()

	key, err := GenerateRSA(stream, opts)
	if err != nil {
		return domain.RSAKeyPair{}, err
	}
	return EncodeRSAKeyPair(key)
}

// GenerateRSA runs the versioned prime search against src and assembles an
// RSA private key with e = 65537 and d = e^-1 mod lcm(p-1, q-1).
//
// Each candidate consumes exactly Bits/16 bytes from src in a single Next
// call. The two top bits and the low bit are forced on, so the modulus always
// has exactly Bits bits.
func GenerateRSA(src ByteSource, opts RSAOptions) (*rsa.PrivateKey, error) {
	opts = opts.withDefaults()
	if opts.Bits < 1024 || opts.Bits%16 != 0 {
		return nil, fmt.Errorf("%w: unsupported modulus size %d", domain.ErrGenerationFailure, opts.Bits)
	}
	primeBits := opts.Bits / 2
	e := big.NewInt(RSAPublicExponent)

	p, err := searchPrime(src, primeBits, e, opts.MaxCandidates)
	if err != nil {
		return nil, err
	}

	// |p-q| must not be small enough for Fermat factorization.
	minDistance := new(big.Int).Lsh(big.NewInt(1), uint(primeBits-100))
	var q *big.Int
	for redraw := 0; ; redraw++ {
		if redraw == maxPrimeRedraws {
			return nil, fmt.Errorf("%w: primes too close after %d redraws", domain.ErrGenerationFailure, redraw)
		}
		q, err = searchPrime(src, primeBits, e, opts.MaxCandidates)
		if err != nil {
			return nil, err
		}
		diff := new(big.Int).Sub(p, q)
		if diff.Abs(diff).Cmp(minDistance) >= 0 {
			break
		}
	}

	return assembleRSA(p, q, e)
}

// searchPrime draws candidates until one passes the primality test or the
// candidate budget is spent.
func searchPrime(src ByteSource, bits int, e *big.Int, maxCandidates int) (*big.Int, error) {
	byteLen := bits / 8
	one := big.NewInt(1)
	rem := new(big.Int)
	for i := 0; i < maxCandidates; i++ {
		b := src.Next(byteLen)
		if len(b) != byteLen {
			return nil, fmt.Errorf("%w: short read from byte source", domain.ErrGenerationFailure)
		}
		b[0] |= 0xC0
		b[byteLen-1] |= 0x01

		candidate := new(big.Int).SetBytes(b)
		Wipe(b)

		// gcd(p-1, e) == 1 iff p mod e != 1, since e is prime.
		if rem.Mod(candidate, e).Cmp(one) == 0 {
			continue
		}
		if candidate.ProbablyPrime(millerRabinRounds) {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime within %d candidates", domain.ErrGenerationFailure, bits, maxCandidates)
}

func assembleRSA(p, q, e *big.Int) (*rsa.PrivateKey, error) {
	one := big.NewInt(1)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)

	gcd := new(big.Int).GCD(nil, nil, pm1, qm1)
	lambda := new(big.Int).Mul(pm1, qm1)
	lambda.Div(lambda, gcd)

	d := new(big.Int).ModInverse(e, lambda)
	if d == nil {
		return nil, fmt.Errorf("%w: public exponent not invertible", domain.ErrGenerationFailure)
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).Mul(p, q),
			E: int(e.Int64()),
		},
		D:      d,
		Primes: []*big.Int{p, q},
	}
	key.Precompute()
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailure, err)
	}
	return key, nil
}
