package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"keyforge/internal/app"
	"keyforge/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	digest     string
	workers    int

	getenv func(string) string
	logs   io.Writer
	wire   *app.Wire
	cfg    config.Config
}

// Execute runs the CLI with os.Args. SIGINT and SIGTERM cancel the command's
// context; a running prime search still finishes but its result is dropped.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(os.Getenv, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. getenv and logs are injectable for tests.
func NewRootCmd(getenv func(string) string, logs io.Writer) *cobra.Command {
	opts := &rootOptions{getenv: getenv, logs: logs}

	root := &cobra.Command{
		Use:           "keyforge",
		Short:         "Deterministic key derivation and self-signed certificates",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.build(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $KEYFORGE_CONFIG)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (console or json)")
	root.PersistentFlags().StringVar(&opts.digest, "digest", "", "seed digest (sha256, sha3-256, blake2b-256)")
	root.PersistentFlags().IntVar(&opts.workers, "workers", 0, "concurrent generation jobs (default: number of CPUs)")

	root.AddCommand(
		ed25519Cmd(opts),
		rsaCmd(opts),
		certCmd(opts),
		fingerprintCmd(),
		versionCmd(opts),
	)
	return root
}

// build resolves settings with precedence flag > env > file > default.
func (o *rootOptions) build(cmd *cobra.Command) error {
	cfg := config.Default()

	path := o.configPath
	if path == "" {
		path = o.getenv("KEYFORGE_CONFIG")
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(o.getenv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("digest") {
		cfg.Digest = o.digest
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}

	w, err := app.NewWire(app.Config{Settings: cfg, Logs: o.logs})
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.wire = w
	return nil
}
