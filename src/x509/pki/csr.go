// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/cloudflare/cfssl/helpers"
)

var (
	// ErrInvalidSubject indicates subject fields that cannot be encoded.
	ErrInvalidSubject = errors.New("x509pki: invalid subject")

	// ErrParseCSR indicates a certificate signing request that could not be decoded.
	ErrParseCSR = errors.New("x509pki: failed to parse certificate request")
)

const csrBlockType = "CERTIFICATE REQUEST"

// Subject holds the distinguished name and subject alternative names of a
// certificate signing request. Empty name attributes are omitted.
type Subject struct {
	CommonName         string
	Country            string
	StateOrProvince    string
	Locality           string
	Organization       string
	OrganizationalUnit string

	// SANs are sorted by form: IP addresses, e-mail addresses (containing
	// '@'), and DNS names for everything else.
	SANs []string
}

var (
	oidCountry            = asn1.ObjectIdentifier{2, 5, 4, 6}
	oidStateOrProvince    = asn1.ObjectIdentifier{2, 5, 4, 8}
	oidLocality           = asn1.ObjectIdentifier{2, 5, 4, 7}
	oidOrganization       = asn1.ObjectIdentifier{2, 5, 4, 10}
	oidOrganizationalUnit = asn1.ObjectIdentifier{2, 5, 4, 11}
	oidCommonName         = asn1.ObjectIdentifier{2, 5, 4, 3}
)

// rdnSequence returns the subject as one RDN per attribute in the order
// C, ST, L, O, OU, CN.
func (s Subject) rdnSequence() (pkix.RDNSequence, error) {
	if s.Country != "" && len(s.Country) != 2 {
		return nil, fmt.Errorf("%w: country must be a two-letter code: country=%s", ErrInvalidSubject, s.Country)
	}

	attrs := []struct {
		oid   asn1.ObjectIdentifier
		value string
	}{
		{oidCountry, s.Country},
		{oidStateOrProvince, s.StateOrProvince},
		{oidLocality, s.Locality},
		{oidOrganization, s.Organization},
		{oidOrganizationalUnit, s.OrganizationalUnit},
		{oidCommonName, s.CommonName},
	}

	var seq pkix.RDNSequence
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		seq = append(seq, pkix.RelativeDistinguishedNameSET{{Type: a.oid, Value: a.value}})
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: no name attributes", ErrInvalidSubject)
	}
	return seq, nil
}

// GenerateCSR generates a private key and a certificate signing request for
// subject signed with it.
func GenerateCSR(keyType KeyType, size int, subject Subject) (*x509.CertificateRequest, crypto.Signer, error) {
	key, err := GeneratePrivateKey(keyType, size)
	if err != nil {
		return nil, nil, err
	}

	req, err := CreateCSR(key, subject)
	if err != nil {
		return nil, nil, err
	}
	return req, key, nil
}

// CreateCSR creates a certificate signing request for subject signed by key
// with SHA-256.
func CreateCSR(key crypto.Signer, subject Subject) (*x509.CertificateRequest, error) {
	seq, err := subject.rdnSequence()
	if err != nil {
		return nil, err
	}
	rawSubject, err := asn1.Marshal(seq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubject, err)
	}

	template := &x509.CertificateRequest{RawSubject: rawSubject}
	switch key.Public().(type) {
	case *rsa.PublicKey:
		template.SignatureAlgorithm = x509.SHA256WithRSA
	case *ecdsa.PublicKey:
		template.SignatureAlgorithm = x509.ECDSAWithSHA256
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}

	for _, san := range subject.SANs {
		san = strings.TrimSpace(san)
		switch {
		case san == "":
		case net.ParseIP(san) != nil:
			template.IPAddresses = append(template.IPAddresses, net.ParseIP(san))
		case strings.Contains(san, "@"):
			template.EmailAddresses = append(template.EmailAddresses, san)
		default:
			template.DNSNames = append(template.DNSNames, san)
		}
	}

	der, err := x509.CreateCertificateRequest(rand.Reader, template, key)
	if err != nil {
		return nil, fmt.Errorf("x509pki: failed to create certificate request: %w", err)
	}
	return x509.ParseCertificateRequest(der)
}

// CSRToPEM encodes req as a "CERTIFICATE REQUEST" PEM block. With singleLine
// the newlines are removed, as some web forms expect.
func CSRToPEM(req *x509.CertificateRequest, singleLine bool) string {
	out := string(pem.EncodeToMemory(&pem.Block{Type: csrBlockType, Bytes: req.Raw}))
	if singleLine {
		out = strings.ReplaceAll(out, "\n", "")
	}
	return out
}

// CSRToFile writes the PEM encoding of req to filename.
func CSRToFile(req *x509.CertificateRequest, filename string) error {
	if err := os.WriteFile(filename, []byte(CSRToPEM(req, false)), 0o644); err != nil {
		return fmt.Errorf("x509pki: failed to write certificate request: %w", err)
	}
	return nil
}

// ParseCSRPEM decodes a PEM certificate signing request, including the
// single-line form produced by [CSRToPEM], and verifies its signature.
func ParseCSRPEM(data []byte) (*x509.CertificateRequest, error) {
	data = bytes.TrimSpace(data)
	if !bytes.Contains(data, []byte("\n")) {
		data = unfoldPEM(data, csrBlockType)
	}

	req, err := helpers.ParseCSRPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCSR, err)
	}
	if err := req.CheckSignature(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseCSR, err)
	}
	return req, nil
}

// unfoldPEM puts the armor lines of a single-line PEM block back on their own lines.
func unfoldPEM(data []byte, blockType string) []byte {
	begin := []byte("-----BEGIN " + blockType + "-----")
	end := []byte("-----END " + blockType + "-----")
	data = bytes.Replace(data, begin, append(append([]byte{}, begin...), '\n'), 1)
	return bytes.Replace(data, end, append([]byte{'\n'}, end...), 1)
}
