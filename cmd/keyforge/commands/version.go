package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyforge/internal/crypto"
)

func versionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print derivation parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "RSA algorithm version: %d\n", crypto.RSAAlgorithmVersion)
			fmt.Fprintf(out, "Seed digest: %s\n", opts.cfg.DigestAlgorithm())
			fmt.Fprintf(out, "Workers: %d\n", opts.wire.Pool.Size())
			return nil
		},
	}
}
