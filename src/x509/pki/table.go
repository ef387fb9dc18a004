// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki

import (
	"bytes"
	"crypto/x509"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/goutils/src/jsonobject"
)

// CertificateInfo describes one certificate as produced by [Summarize].
var CertificateInfo = jsonobject.MustSchema("CertificateInfo",
	jsonobject.Field{Name: "role", Type: jsonobject.String},
	jsonobject.Field{Name: "subject", Type: jsonobject.String},
	jsonobject.Field{Name: "issuer", Type: jsonobject.String},
	jsonobject.Field{Name: "serialNumber", Type: jsonobject.String},
	jsonobject.Field{Name: "notBefore", Type: jsonobject.String},
	jsonobject.Field{Name: "notAfter", Type: jsonobject.String},
	jsonobject.Field{Name: "keySize", Type: jsonobject.String},
	jsonobject.Field{Name: "dnsNames", Type: jsonobject.ListOf(jsonobject.String)},
)

// Role classifies cert by its own properties: "Root CA" for a self-signed CA,
// "Intermediate CA" for any other CA and "End-Entity" otherwise.
func Role(cert *x509.Certificate) string {
	switch {
	case cert.IsCA && bytes.Equal(cert.RawIssuer, cert.RawSubject) && cert.CheckSignatureFrom(cert) == nil:
		return "Root CA"
	case cert.IsCA:
		return "Intermediate CA"
	default:
		return "End-Entity"
	}
}

// Summarize returns a [CertificateInfo] record per certificate.
func Summarize(certs []*x509.Certificate) []*jsonobject.Record {
	out := make([]*jsonobject.Record, 0, len(certs))
	for _, cert := range certs {
		rec := CertificateInfo.New().
			MustSet("role", Role(cert)).
			MustSet("subject", cert.Subject.String()).
			MustSet("issuer", cert.Issuer.String()).
			MustSet("serialNumber", cert.SerialNumber.String()).
			MustSet("notBefore", cert.NotBefore.UTC().Format(time.RFC3339)).
			MustSet("notAfter", cert.NotAfter.UTC().Format(time.RFC3339)).
			MustSet("keySize", KeyDescription(cert.PublicKey)).
			MustSet("dnsNames", cert.DNSNames)
		out = append(out, rec)
	}
	return out
}

// RenderTable renders certs as a markdown table.
func RenderTable(certs []*x509.Certificate) string {
	if len(certs) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key Size"})

	rows := make([][]string, 0, len(certs))
	for i, cert := range certs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			Role(cert),
			cert.Subject.CommonName,
			cert.Issuer.CommonName,
			cert.NotAfter.Format("2006-01-02"),
			KeyDescription(cert.PublicKey),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
