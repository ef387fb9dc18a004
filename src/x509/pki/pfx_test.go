// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki_test

import (
	"crypto/ecdsa"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"software.sslmate.com/src/go-pkcs12"

	x509pki "github.com/H0llyW00dzZ/goutils/src/x509/pki"
)

func encodePFX(t *testing.T, chain testChain, password string) []byte {
	t.Helper()
	data, err := pkcs12.Modern.Encode(chain.leafKey, chain.leaf,
		[]*x509.Certificate{chain.intermediate, chain.root}, password)
	require.NoError(t, err)
	return data
}

func TestLoadPFX(t *testing.T) {
	chain := newTestChain(t)
	data := encodePFX(t, chain, "changeit")

	tests := []struct {
		name     string
		password string
		testFunc func(t *testing.T, bundle *x509pki.Bundle, err error)
	}{
		{
			name:     "Correct Password",
			password: "changeit",
			testFunc: func(t *testing.T, bundle *x509pki.Bundle, err error) {
				require.NoError(t, err)
				require.Len(t, bundle.Certificates, 3)
				assert.Equal(t, chain.leaf.Raw, bundle.Leaf().Raw, "leaf must come first")
				assert.Equal(t, chain.intermediate.Raw, bundle.Certificates[1].Raw)
				assert.Equal(t, chain.root.Raw, bundle.Certificates[2].Raw)
				assert.True(t, chain.leafKey.(*ecdsa.PrivateKey).Equal(bundle.PrivateKey))
			},
		},
		{
			name:     "Wrong Password",
			password: "wrong",
			testFunc: func(t *testing.T, bundle *x509pki.Bundle, err error) {
				assert.ErrorIs(t, err, x509pki.ErrParsePFX)
				assert.Nil(t, bundle)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := x509pki.LoadPFX(data, tt.password)
			tt.testFunc(t, bundle, err)
		})
	}
}

func TestLoadPFXFile(t *testing.T) {
	chain := newTestChain(t)
	path := filepath.Join(t.TempDir(), "bundle.pfx")
	require.NoError(t, os.WriteFile(path, encodePFX(t, chain, "pw"), 0o600))

	bundle, err := x509pki.LoadPFXFile(path, "pw")
	require.NoError(t, err)
	assert.Equal(t, "leaf.example.com", bundle.Leaf().Subject.CommonName)

	_, err = x509pki.LoadPFXFile(filepath.Join(t.TempDir(), "missing.pfx"), "pw")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = x509pki.LoadPFX([]byte("not a pfx"), "")
	assert.ErrorIs(t, err, x509pki.ErrParsePFX)
}

func TestBundleLeafEmpty(t *testing.T) {
	assert.Nil(t, (&x509pki.Bundle{}).Leaf())
}
