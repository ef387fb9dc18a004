// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
	x509pki "github.com/H0llyW00dzZ/goutils/src/x509/pki"
)

// PFX output formats.
const (
	formatTable = "table"
	formatPEM   = "pem"
	formatJSON  = "json"
)

func newPFXCommand() *cobra.Command {
	var (
		password string
		prompt   bool
		format   string
		output   string
		keyOut   string
	)

	cmd := &cobra.Command{
		Use:   "pfx PFX_FILE",
		Short: "Inspect a PKCS#12 bundle and extract its certificates and key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt {
				pass, err := promptPassphrase(cmd, "Enter PFX password: ", false)
				if err != nil {
					return err
				}
				password = string(pass)
			}

			bundle, err := x509pki.LoadPFXFile(args[0], password)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case formatTable:
				out = []byte(x509pki.RenderTable(bundle.Certificates))
			case formatPEM:
				out = x509pki.EncodeCertificatesPEM(bundle.Certificates)
			case formatJSON:
				if out, err = summaryJSON(bundle); err != nil {
					return err
				}
				out = append(out, '\n')
			default:
				return fmt.Errorf("unsupported format %q: must be one of table, pem, json", format)
			}

			if err := writeOutput(cmd, output, out, 0o644); err != nil {
				return err
			}

			if keyOut == "" {
				return nil
			}
			keyPEM, err := x509pki.PrivateKeyToPEM(bundle.PrivateKey, nil)
			if err != nil {
				return err
			}
			return writeOutput(cmd, keyOut, keyPEM, 0o600)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "PFX password")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "prompt for the PFX password")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, pem or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().StringVar(&keyOut, "key-out", "", "write the unencrypted private key to this file")
	return cmd
}

// summaryJSON encodes the bundle's certificates as an array of
// [x509pki.CertificateInfo] objects.
func summaryJSON(bundle *x509pki.Bundle) ([]byte, error) {
	records := x509pki.Summarize(bundle.Certificates)
	items := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := jsonobject.Marshal(rec, jsonobject.ExcludeNull(true))
		if err != nil {
			return nil, err
		}
		items = append(items, data)
	}
	return json.MarshalIndent(items, "", "  ")
}
