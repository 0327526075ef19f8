package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func certCmd(opts *rootOptions) *cobra.Command {
	var (
		cn, org, country, state, locality, email string
		days                                     int
		outDir                                   string
		toStdout                                 bool
	)
	cmd := &cobra.Command{
		Use:   "cert",
		Short: "Issue a self-signed certificate on a fresh RSA-2048 key",
		Long: "Issue a self-signed CA certificate. Subject fields default to the\n" +
			"certificate section of the config file; flags override them. The key and\n" +
			"certificate are written together or not at all.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := opts.cfg.Certificate
			flags := cmd.Flags()
			if flags.Changed("cn") {
				req.CommonName = cn
			}
			if flags.Changed("org") {
				req.Organization = org
			}
			if flags.Changed("country") {
				req.Country = country
			}
			if flags.Changed("state") {
				req.State = state
			}
			if flags.Changed("locality") {
				req.Locality = locality
			}
			if flags.Changed("email") {
				req.Email = email
			}
			if flags.Changed("days") {
				req.ValidityDays = days
			}

			out := cmd.OutOrStdout()
			if toStdout {
				issued, err := opts.wire.Certs.Issue(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprint(out, issued.PrivatePEM)
				fmt.Fprint(out, issued.CertificatePEM)
				return nil
			}

			issued, keyPath, certPath, err := opts.wire.Certs.IssueAndSave(cmd.Context(), req, opts.wire.CertificateStore(outDir))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Certificate issued for: %s\n", issued.Certificate.Subject.CommonName)
			fmt.Fprintf(out, "Valid until: %s\n", issued.Certificate.NotAfter.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(out, "Private key saved to: %s\n", keyPath)
			fmt.Fprintf(out, "Certificate saved to: %s\n", certPath)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cn, "cn", "", "common name (domain or IP)")
	f.StringVar(&org, "org", "", "organization")
	f.StringVar(&country, "country", "", "two-letter country code")
	f.StringVar(&state, "state", "", "state or province")
	f.StringVar(&locality, "locality", "", "city or locality")
	f.StringVar(&email, "email", "", "contact email address")
	f.IntVar(&days, "days", 0, "validity in days")
	f.StringVar(&outDir, "out-dir", "", "directory for key and certificate (default from config)")
	f.BoolVar(&toStdout, "stdout", false, "print key and certificate instead of writing files")
	return cmd
}
