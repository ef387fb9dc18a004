// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki_test

import (
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509pki "github.com/H0llyW00dzZ/goutils/src/x509/pki"
)

// certsOnlyPKCS7 builds a degenerate PKCS#7 SignedData holding certs, the
// layout of a .p7b bundle.
func certsOnlyPKCS7(t *testing.T, certs []*x509.Certificate) []byte {
	t.Helper()

	var raw []byte
	for _, c := range certs {
		raw = append(raw, c.Raw...)
	}
	emptySet := asn1.RawValue{Class: asn1.ClassUniversal, Tag: asn1.TagSet, IsCompound: true}

	signedData, err := asn1.Marshal(struct {
		Version          int
		DigestAlgorithms asn1.RawValue
		ContentInfo      struct{ ContentType asn1.ObjectIdentifier }
		Certificates     asn1.RawValue
		Crls             asn1.RawValue
		SignerInfos      asn1.RawValue
	}{
		Version:          1,
		DigestAlgorithms: emptySet,
		ContentInfo:      struct{ ContentType asn1.ObjectIdentifier }{asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}},
		Certificates:     asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 0, IsCompound: true, Bytes: raw},
		Crls:             asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 1, IsCompound: true},
		SignerInfos:      emptySet,
	})
	require.NoError(t, err)

	der, err := asn1.Marshal(struct {
		ContentType asn1.ObjectIdentifier
		Content     asn1.RawValue
	}{
		ContentType: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2},
		Content:     asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 0, IsCompound: true, Bytes: signedData},
	})
	require.NoError(t, err)
	return der
}

func TestDecodeCertificates(t *testing.T) {
	chain := newTestChain(t)
	certs := []*x509.Certificate{chain.leaf, chain.intermediate, chain.root}
	pemData := x509pki.EncodeCertificatesPEM(certs)

	var der []byte
	for _, c := range certs {
		der = append(der, c.Raw...)
	}

	p7 := certsOnlyPKCS7(t, certs)

	tests := []struct {
		name string
		data []byte
		want int
	}{
		{name: "PEM Chain", data: pemData, want: 3},
		{name: "Single PEM", data: x509pki.EncodeCertificatesPEM(certs[:1]), want: 1},
		{name: "Concatenated DER", data: der, want: 3},
		{name: "Single DER", data: chain.leaf.Raw, want: 1},
		{name: "PKCS7 DER", data: p7, want: 3},
		{name: "PKCS7 PEM", data: pem.EncodeToMemory(&pem.Block{Type: "PKCS7", Bytes: p7}), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x509pki.DecodeCertificates(tt.data)
			require.NoError(t, err)
			require.Len(t, got, tt.want)
			for i, c := range got {
				assert.Equal(t, certs[i].Raw, c.Raw)
			}
		})
	}
}

func TestDecodeCertificatesErrors(t *testing.T) {
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: []byte{1, 2, 3}})
	_, err := x509pki.DecodeCertificates(keyPEM)
	assert.ErrorIs(t, err, x509pki.ErrInvalidBlockType)

	_, err = x509pki.DecodeCertificates([]byte("garbage"))
	assert.ErrorIs(t, err, x509pki.ErrParseCertificate)

	_, err = x509pki.DecodeCertificates(nil)
	assert.ErrorIs(t, err, x509pki.ErrParseCertificate)
}

func TestEncodeCertificatesPEMEmpty(t *testing.T) {
	assert.Empty(t, x509pki.EncodeCertificatesPEM(nil))
}
