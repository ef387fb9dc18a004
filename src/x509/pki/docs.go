// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509pki generates private keys and certificate signing requests,
// loads [PKCS12] bundles, and encodes the results as [PEM].
//
// Keys are RSA or elliptic curve (P-256 and P-384). Private keys are written in
// the traditional OpenSSL layouts (PKCS#1 for RSA, SEC 1 for EC), optionally
// encrypted with AES-256, or in the OpenSSH format. CSR subjects are encoded
// in the fixed order C, ST, L, O, OU, CN and signed with SHA-256.
//
// Example:
//
//	csr, key, err := x509pki.GenerateCSR(x509pki.RSA, 4096, x509pki.Subject{
//		CommonName:   "mydomain.com",
//		Country:      "CA",
//		Organization: "Big Security, Inc.",
//		SANs:         []string{"san1.mydomain.com", "san2.mydomain.com"},
//	})
//	if err != nil {
//		return err
//	}
//	if err := x509pki.CSRToFile(csr, "csr.pem"); err != nil {
//		return err
//	}
//	return x509pki.PrivateKeyToFile(key, "privkey.pem", []byte("Password!1"))
//
// [PKCS12]: https://grokipedia.com/page/PKCS_12
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509pki
