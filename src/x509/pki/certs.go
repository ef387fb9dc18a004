// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates a PEM block that is not a certificate.
	ErrInvalidBlockType = errors.New("x509pki: invalid block type")

	// ErrParseCertificate indicates data that holds no parseable certificate.
	ErrParseCertificate = errors.New("x509pki: failed to parse certificate")
)

const certBlockType = "CERTIFICATE"

func isPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeCertificates decodes every certificate in data, which may be a
// sequence of PEM blocks, concatenated DER, or a PKCS#7 bundle in either
// encoding.
func DecodeCertificates(data []byte) ([]*x509.Certificate, error) {
	if isPEM(data) {
		var der []byte
		for {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			switch block.Type {
			case certBlockType:
				der = append(der, block.Bytes...)
			case "PKCS7":
				return decodePKCS7(block.Bytes)
			default:
				return nil, fmt.Errorf("%w: type=%s", ErrInvalidBlockType, block.Type)
			}
			data = rest
		}
		data = der
	}

	certs, err := x509.ParseCertificates(data)
	if err == nil && len(certs) > 0 {
		return certs, nil
	}
	return decodePKCS7(data)
}

func decodePKCS7(der []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, fmt.Errorf("%w: no certificates in PKCS#7 data", ErrParseCertificate)
	}
	return p.Content.SignedData.Certificates, nil
}

// EncodeCertificatesPEM concatenates the PEM encodings of certs.
func EncodeCertificatesPEM(certs []*x509.Certificate) []byte {
	var buf bytes.Buffer
	for _, cert := range certs {
		_ = pem.Encode(&buf, &pem.Block{Type: certBlockType, Bytes: cert.Raw})
	}
	return buf.Bytes()
}
