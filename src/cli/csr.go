// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/goutils/src/logger"
	x509pki "github.com/H0llyW00dzZ/goutils/src/x509/pki"
)

type csrOptions struct {
	keyType    string
	keySize    int
	subject    x509pki.Subject
	csrOut     string
	keyOut     string
	singleLine bool
	encrypt    bool
	openSSH    bool
}

func newCSRCommand(log logger.Logger) *cobra.Command {
	var o csrOptions

	cmd := &cobra.Command{
		Use:   "csr",
		Short: "Generate a private key and a certificate signing request",
		Long: "Generates an RSA or EC private key and a SHA-256 signed certificate signing\n" +
			"request. Without --csr-out and --key-out both are written to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSR(cmd, log, &o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.keyType, "key-type", "k", string(x509pki.RSA), "key type: rsa or ec")
	f.IntVarP(&o.keySize, "key-size", "b", 2048, "key size in bits (ec: 256 or 384)")
	f.StringVar(&o.subject.CommonName, "cn", "", "common name")
	f.StringVar(&o.subject.Country, "country", "", "two-letter country code")
	f.StringVar(&o.subject.StateOrProvince, "state", "", "state or province")
	f.StringVar(&o.subject.Locality, "locality", "", "locality")
	f.StringVar(&o.subject.Organization, "org", "", "organization")
	f.StringVar(&o.subject.OrganizationalUnit, "ou", "", "organizational unit")
	f.StringSliceVar(&o.subject.SANs, "san", nil, "subject alternative names (DNS name, IP or e-mail)")
	f.StringVar(&o.csrOut, "csr-out", "", "write the CSR to this file")
	f.StringVar(&o.keyOut, "key-out", "", "write the private key to this file")
	f.BoolVar(&o.singleLine, "single-line", false, "print the CSR without line breaks")
	f.BoolVar(&o.encrypt, "encrypt", false, "prompt for a passphrase to encrypt the private key")
	f.BoolVar(&o.openSSH, "openssh", false, "write the private key in OpenSSH format")
	_ = cmd.MarkFlagRequired("cn")
	return cmd
}

func runCSR(cmd *cobra.Command, log logger.Logger, o *csrOptions) error {
	keyType, err := x509pki.ParseKeyType(o.keyType)
	if err != nil {
		return err
	}

	var passphrase []byte
	if o.encrypt {
		if passphrase, err = promptPassphrase(cmd, "Enter key passphrase: ", true); err != nil {
			return err
		}
	}

	req, key, err := x509pki.GenerateCSR(keyType, o.keySize, o.subject)
	if err != nil {
		return err
	}

	var keyPEM []byte
	if o.openSSH {
		keyPEM, err = x509pki.PrivateKeyToOpenSSH(key, o.subject.CommonName, passphrase)
	} else {
		keyPEM, err = x509pki.PrivateKeyToPEM(key, passphrase)
	}
	if err != nil {
		return err
	}

	csrPEM := x509pki.CSRToPEM(req, o.singleLine)
	if o.singleLine {
		csrPEM += "\n"
	}

	if err := writeOutput(cmd, o.csrOut, []byte(csrPEM), 0o644); err != nil {
		return err
	}
	if err := writeOutput(cmd, o.keyOut, keyPEM, 0o600); err != nil {
		return err
	}

	if o.csrOut != "" {
		log.Printf("Certificate signing request for %s written to %s", req.Subject, o.csrOut)
	}
	if o.keyOut != "" {
		log.Printf("%s private key written to %s", x509pki.KeyDescription(key.Public()), o.keyOut)
	}
	return nil
}
