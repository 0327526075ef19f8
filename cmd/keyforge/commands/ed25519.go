package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"keyforge/internal/crypto"
)

func ed25519Cmd(opts *rootOptions) *cobra.Command {
	var (
		fromStdin bool
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "ed25519 [seed]",
		Short: "Derive an Ed25519 key pair from a seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readSeed(cmd, args, fromStdin)
			if err != nil {
				return err
			}
			kp, err := opts.wire.Keys.DeriveEd25519(cmd.Context(), seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(map[string]string{
					"private_key": kp.PrivateKeyHex(),
					"public_key":  kp.PublicKeyHex(),
				})
			}
			fmt.Fprintf(out, "Private key: %s\n", kp.PrivateKeyHex())
			fmt.Fprintf(out, "Public key:  %s\n", kp.PublicKeyHex())
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(kp.PublicKey.Slice()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the seed from the first line of stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print {private_key, public_key} as JSON")
	return cmd
}
