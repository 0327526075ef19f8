package commands_test

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforge/cmd/keyforge/commands"
	kfcrypto "keyforge/internal/crypto"
	"keyforge/internal/domain"
)

func run(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()
	getenv := func(k string) string { return env[k] }
	cmd := commands.NewRootCmd(getenv, io.Discard)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const (
	helloPriv = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	helloPub  = "cf74826ffd487a1010bc90950087d8730a3c900fd31baf1f6377f15034590f87"
)

func TestEd25519Command(t *testing.T) {
	out, err := run(t, nil, "", "ed25519", "hello world")
	require.NoError(t, err)
	assert.Contains(t, out, "Private key: "+helloPriv)
	assert.Contains(t, out, "Public key:  "+helloPub)
	assert.Contains(t, out, "Fingerprint: ")
}

func TestEd25519CommandJSONFromStdin(t *testing.T) {
	out, err := run(t, nil, "  hello world  \n", "ed25519", "--stdin", "--json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, helloPriv, got["private_key"])
	assert.Equal(t, helloPub, got["public_key"])
}

func TestEd25519CommandInvalidSeed(t *testing.T) {
	_, err := run(t, nil, "", "ed25519", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSeed))
}

func TestEd25519CommandDigestFromEnv(t *testing.T) {
	out, err := run(t, map[string]string{"KEYFORGE_DIGEST": "sha3-256"}, "", "ed25519", "hello world")
	require.NoError(t, err)
	assert.NotContains(t, out, helloPub)

	flagOut, err := run(t, map[string]string{"KEYFORGE_DIGEST": "sha3-256"}, "", "--digest", "sha256", "ed25519", "hello world")
	require.NoError(t, err)
	assert.Contains(t, flagOut, helloPub)
}

func TestUnknownDigestRejected(t *testing.T) {
	_, err := run(t, nil, "", "--digest", "md5", "ed25519", "hello world")
	require.Error(t, err)
}

func TestCertCommandWritesPair(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, nil, "", "cert",
		"--cn", "example.com", "--org", "Acme", "--country", "US",
		"--days", "30", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Certificate issued for: example.com")

	certPEM, err := os.ReadFile(filepath.Join(dir, "server.crt"))
	require.NoError(t, err)
	cert, err := kfcrypto.ParseCertificatePEM(certPEM)
	require.NoError(t, err)
	assert.Equal(t, "example.com", cert.Subject.CommonName)
	assert.Equal(t, []string{"Acme"}, cert.Subject.Organization)
	assert.True(t, cert.IsCA)

	keyPEM, err := os.ReadFile(filepath.Join(dir, "server.key"))
	require.NoError(t, err)
	_, err = kfcrypto.ParsePrivateKeyPEM(keyPEM)
	require.NoError(t, err)
}

func TestCertCommandInvalidRequestWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, nil, "", "cert", "--cn", "example.com", "--days", "0", "--out-dir", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCertCommandUsesConfigProfile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "keyforge.yaml")
	yaml := "certificate:\n  common_name: profile.example\n  validity_days: 10\n" +
		"output:\n  dir: " + dir + "\n  key_file: ca.key\n  cert_file: ca.crt\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))

	_, err := run(t, map[string]string{"KEYFORGE_CONFIG": cfgPath}, "", "cert")
	require.NoError(t, err)

	certPEM, err := os.ReadFile(filepath.Join(dir, "ca.crt"))
	require.NoError(t, err)
	cert, err := kfcrypto.ParseCertificatePEM(certPEM)
	require.NoError(t, err)
	assert.Equal(t, "profile.example", cert.Subject.CommonName)
}

func TestFingerprintCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, nil, "", "cert", "--cn", "fp.example", "--out-dir", dir)
	require.NoError(t, err)

	fromCert, err := run(t, nil, "", "fingerprint", filepath.Join(dir, "server.crt"))
	require.NoError(t, err)
	fromKey, err := run(t, nil, "", "fingerprint", filepath.Join(dir, "server.key"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fromCert, "Fingerprint: "))
	assert.Equal(t, fromCert, fromKey)
}

func TestRSACommandWritesPair(t *testing.T) {
	if testing.Short() {
		t.Skip("RSA prime search is slow")
	}
	dir := t.TempDir()
	_, err := run(t, nil, "", "rsa", "hello world", "--out-dir", dir)
	require.NoError(t, err)

	pubPEM, err := os.ReadFile(filepath.Join(dir, "seed.pub"))
	require.NoError(t, err)
	pub, err := kfcrypto.ParsePublicKeyPEM(pubPEM)
	require.NoError(t, err)
	require.NotNil(t, pub)

	printed, err := run(t, nil, "", "rsa", "hello world")
	require.NoError(t, err)
	assert.Contains(t, printed, string(pubPEM))
}

func TestRSACommandKeepsCertificateKey(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, nil, "", "cert", "--cn", "test.local", "--days", "30", "--out-dir", dir)
	require.NoError(t, err)
	_, err = run(t, nil, "", "rsa", "another seed", "--out-dir", dir)
	require.NoError(t, err)

	certPEM, err := os.ReadFile(filepath.Join(dir, "server.crt"))
	require.NoError(t, err)
	cert, err := kfcrypto.ParseCertificatePEM(certPEM)
	require.NoError(t, err)
	keyPEM, err := os.ReadFile(filepath.Join(dir, "server.key"))
	require.NoError(t, err)
	keyAny, err := kfcrypto.ParsePrivateKeyPEM(keyPEM)
	require.NoError(t, err)
	key, ok := keyAny.(*rsa.PrivateKey)
	require.True(t, ok)
	assert.True(t, key.PublicKey.Equal(cert.PublicKey), "server.key no longer matches server.crt")

	seedPEM, err := os.ReadFile(filepath.Join(dir, "seed.key"))
	require.NoError(t, err)
	assert.NotEqual(t, string(keyPEM), string(seedPEM))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, nil, "", "--workers", "3", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "RSA algorithm version: 1")
	assert.Contains(t, out, "Seed digest: sha256")
	assert.Contains(t, out, "Workers: 3")
}
