package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"keyforge/internal/domain"
)

type Config struct {
	LogLevel    string                    `yaml:"log_level"`
	LogFormat   string                    `yaml:"log_format"`
	Workers     int                       `yaml:"workers"`
	Digest      string                    `yaml:"digest"`
	RSA         RSAConfig                 `yaml:"rsa"`
	Certificate domain.CertificateRequest `yaml:"certificate"`
	Output      OutputConfig              `yaml:"output"`
}

type RSAConfig struct {
	MaxCandidates int `yaml:"max_candidates"`
}

// OutputConfig names the files written under Dir. KeyFile and CertFile hold
// the certificate pair; RSAKeyFile and PublicFile hold the seed-derived RSA
// pair. All four names must differ.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	KeyFile    string `yaml:"key_file"`
	CertFile   string `yaml:"cert_file"`
	RSAKeyFile string `yaml:"rsa_key_file"`
	PublicFile string `yaml:"public_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "console",
		Digest:      string(domain.DigestSHA256),
		Certificate: domain.DefaultCertificateRequest(),
		Output: OutputConfig{
			Dir:        ".",
			KeyFile:    "server.key",
			CertFile:   "server.crt",
			RSAKeyFile: "seed.key",
			PublicFile: "seed.pub",
		},
	}
}

// Load reads a YAML file on top of Default. ${VAR} references are expanded
// from the environment before parsing.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from KEYFORGE_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("KEYFORGE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("KEYFORGE_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("KEYFORGE_DIGEST"); v != "" {
		c.Digest = v
	}
	if v := getenv("KEYFORGE_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := getenv("KEYFORGE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KEYFORGE_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if _, err := domain.ParseDigestAlgorithm(c.Digest); err != nil {
		return fmt.Errorf("digest: %w", err)
	}
	if c.RSA.MaxCandidates < 0 {
		return fmt.Errorf("rsa.max_candidates must not be negative")
	}
	if err := c.Certificate.Validate(); err != nil {
		return fmt.Errorf("certificate: %w", err)
	}
	return c.Output.validate()
}

func (o OutputConfig) validate() error {
	names := []struct{ key, val string }{
		{"output.key_file", o.KeyFile},
		{"output.cert_file", o.CertFile},
		{"output.rsa_key_file", o.RSAKeyFile},
		{"output.public_file", o.PublicFile},
	}
	seen := make(map[string]string, len(names))
	for _, n := range names {
		if n.val == "" {
			return fmt.Errorf("%s is required", n.key)
		}
		if prev, ok := seen[n.val]; ok {
			return fmt.Errorf("%s and %s both name %q", prev, n.key, n.val)
		}
		seen[n.val] = n.key
	}
	return nil
}

// DigestAlgorithm returns the parsed digest. Call Validate first.
func (c Config) DigestAlgorithm() domain.DigestAlgorithm {
	alg, _ := domain.ParseDigestAlgorithm(c.Digest)
	return alg
}
