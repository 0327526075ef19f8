package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rsaCmd(opts *rootOptions) *cobra.Command {
	var (
		fromStdin bool
		outDir    string
		write     bool
	)
	cmd := &cobra.Command{
		Use:   "rsa [seed]",
		Short: "Derive an RSA-2048 key pair from a seed",
		Long: "Derive an RSA-2048 key pair from a seed. The same seed and digest always\n" +
			"produce the same PEM output for a given keyforge release.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readSeed(cmd, args, fromStdin)
			if err != nil {
				return err
			}
			kp, err := opts.wire.Keys.DeriveRSA(cmd.Context(), seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !write && outDir == "" {
				fmt.Fprint(out, kp.PrivatePEM)
				fmt.Fprint(out, kp.PublicPEM)
				return nil
			}
			keyPath, pubPath, err := opts.wire.RSAStore(outDir).SavePair([]byte(kp.PrivatePEM), []byte(kp.PublicPEM))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Private key saved to: %s\n", keyPath)
			fmt.Fprintf(out, "Public key saved to:  %s\n", pubPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the seed from the first line of stdin")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write key files into this directory instead of stdout")
	cmd.Flags().BoolVar(&write, "write", false, "write key files into the configured output directory")
	return cmd
}
