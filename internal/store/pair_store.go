package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"keyforge/internal/domain"
)

const (
	privateFileMode = 0o600
	publicFileMode  = 0o644
)

// PairFileStore writes a private key and its public half (public key or
// certificate) into a directory as one unit.
type PairFileStore struct {
	dir         string
	privateName string
	publicName  string
	mu          sync.Mutex
}

// NewPairFileStore returns a PairFileStore writing privateName and publicName
// under dir.
func NewPairFileStore(dir, privateName, publicName string) *PairFileStore {
	return &PairFileStore{dir: dir, privateName: privateName, publicName: publicName}
}

// Paths returns the target paths of the private and public files.
func (s *PairFileStore) Paths() (privatePath, publicPath string) {
	return filepath.Join(s.dir, s.privateName), filepath.Join(s.dir, s.publicName)
}

// SavePair writes both files to temp files first and only then renames them
// into place. If the second rename fails the first target is rolled back, so
// callers never observe a new private key without its public half.
func (s *PairFileStore) SavePair(privatePEM, publicPEM []byte) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.privateName == "" || s.publicName == "" || s.privateName == s.publicName {
		return "", "", fmt.Errorf("store: invalid file names %q and %q", s.privateName, s.publicName)
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", "", err
	}
	privPath, pubPath := s.Paths()

	privTmp, err := writeTemp(privPath, privatePEM, privateFileMode)
	if err != nil {
		return "", "", fmt.Errorf("store: write private key: %w", err)
	}
	defer func() { _ = os.Remove(privTmp) }()

	pubTmp, err := writeTemp(pubPath, publicPEM, publicFileMode)
	if err != nil {
		return "", "", fmt.Errorf("store: write public half: %w", err)
	}
	defer func() { _ = os.Remove(pubTmp) }()

	backup, err := stash(privPath)
	if err != nil {
		return "", "", fmt.Errorf("store: move previous private key aside: %w", err)
	}

	if err := os.Rename(privTmp, privPath); err != nil {
		unstash(backup, privPath)
		return "", "", fmt.Errorf("store: commit private key: %w", err)
	}
	if err := os.Rename(pubTmp, pubPath); err != nil {
		_ = os.Remove(privPath)
		unstash(backup, privPath)
		return "", "", fmt.Errorf("store: commit public half: %w", err)
	}
	if backup != "" {
		_ = os.Remove(backup)
	}
	return privPath, pubPath, nil
}

// LoadPair reads both files back. ok is false when either file is missing.
func (s *PairFileStore) LoadPair() (privatePEM, publicPEM []byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	privPath, pubPath := s.Paths()
	if privatePEM, err = readFile(privPath); err != nil {
		return nil, nil, false, err
	}
	if publicPEM, err = readFile(pubPath); err != nil {
		return nil, nil, false, err
	}
	if privatePEM == nil || publicPEM == nil {
		return nil, nil, false, nil
	}
	return privatePEM, publicPEM, true, nil
}

// Compile-time assertion that PairFileStore implements domain.PairStore.
var _ domain.PairStore = (*PairFileStore)(nil)
