package crypto

import (
	"encoding/binary"

	"keyforge/internal/domain"
)

// ByteSource hands out pseudorandom bytes in caller-chosen chunks.
type ByteSource interface {
	Next(n int) []byte
}

// ByteStream is a deterministic hash chain keyed by a seed digest.
//
// Block i is H(digest || uint64be(i)) for i = 1, 2, ... Each call to Next
// consumes whole blocks and discards whatever is left of the last one, so the
// output of a session depends on the sizes of the calls made, not only on
// their total. Consumers that need reproducible output must keep a fixed
// calling pattern.
//
// A ByteStream is not safe for concurrent use.
type ByteStream struct {
	digest  domain.SeedDigest
	alg     domain.DigestAlgorithm
	counter uint64
}

// NewByteStream starts a session at counter 0.
func NewByteStream(digest domain.SeedDigest, alg domain.DigestAlgorithm) (*ByteStream, error) {
	if _, err := newHash(alg); err != nil {
		return nil, err
	}
	return &ByteStream{digest: digest, alg: alg}, nil
}

// Next returns the next n bytes of the stream. n <= 0 returns an empty slice
// and leaves the counter untouched.
func (s *ByteStream) Next(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, 0, n+64)
	var ctr [8]byte
	for len(out) < n {
		s.counter++
		binary.BigEndian.PutUint64(ctr[:], s.counter)

		h, _ := newHash(s.alg)
		_, _ = h.Write(s.digest[:])
		_, _ = h.Write(ctr[:])
		out = h.Sum(out)
	}
	return out[:n]
}

// Read fills p with Next(len(p)). It never fails.
func (s *ByteStream) Read(p []byte) (int, error) {
	return copy(p, s.Next(len(p))), nil
}

// Counter reports the index of the last block produced.
func (s *ByteStream) Counter() uint64 { return s.counter }

// Wipe clears the digest held by the stream.
func (s *ByteStream) Wipe() { Wipe(s.digest[:]) }
