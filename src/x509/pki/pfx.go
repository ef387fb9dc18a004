// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"

	"software.sslmate.com/src/go-pkcs12"

	"github.com/H0llyW00dzZ/goutils/src/internal/helper/gc"
)

// ErrParsePFX indicates a PKCS#12 archive that could not be decoded, usually
// because of a wrong password.
var ErrParsePFX = errors.New("x509pki: failed to parse PFX")

// Bundle is the content of a PKCS#12 archive.
type Bundle struct {
	// Certificates holds the leaf certificate first, then any CA certificates
	// in archive order.
	Certificates []*x509.Certificate
	PrivateKey   crypto.PrivateKey
}

// Leaf returns the certificate matching the private key.
func (b *Bundle) Leaf() *x509.Certificate {
	if len(b.Certificates) == 0 {
		return nil
	}
	return b.Certificates[0]
}

// LoadPFX decodes a PKCS#12 archive protected by password.
func LoadPFX(data []byte, password string) (*Bundle, error) {
	key, leaf, cas, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePFX, err)
	}

	certs := make([]*x509.Certificate, 0, len(cas)+1)
	certs = append(certs, leaf)
	certs = append(certs, cas...)
	return &Bundle{Certificates: certs, PrivateKey: key}, nil
}

// LoadPFXFile reads and decodes the PKCS#12 archive at path.
func LoadPFXFile(path, password string) (*Bundle, error) {
	data, err := gc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadPFX(data, password)
}
