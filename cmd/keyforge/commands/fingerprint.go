package commands

import (
	"crypto"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	kfcrypto "keyforge/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <pem-file>",
		Short: "Print the fingerprint of a public key, certificate or private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// #nosec G304 -- path is operator-provided.
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			pub, err := kfcrypto.ParsePublicKeyPEM(raw)
			if err != nil {
				priv, perr := kfcrypto.ParsePrivateKeyPEM(raw)
				if perr != nil {
					return err
				}
				signer, ok := priv.(crypto.Signer)
				if !ok {
					return fmt.Errorf("unsupported private key type %T", priv)
				}
				pub = signer.Public()
			}
			fp, err := kfcrypto.FingerprintPublicKey(pub)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}
