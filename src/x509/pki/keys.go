// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pki

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cloudflare/cfssl/csr"
	"github.com/cloudflare/cfssl/helpers"
	"golang.org/x/crypto/ssh"
)

var (
	// ErrUnsupportedKeyType indicates a key type other than rsa or ec.
	ErrUnsupportedKeyType = errors.New("x509pki: key types supported are 'rsa' and 'ec'")

	// ErrUnsupportedKeySize indicates a key size the key type does not support.
	ErrUnsupportedKeySize = errors.New("x509pki: unsupported key size")

	// ErrUnsupportedKey indicates a private key of an unexpected Go type.
	ErrUnsupportedKey = errors.New("x509pki: unsupported private key")

	// ErrParseKey indicates a private key that could not be decoded.
	ErrParseKey = errors.New("x509pki: failed to parse private key")
)

// KeyType selects the private key algorithm.
type KeyType string

const (
	// RSA keys support sizes from 2048 to 8192 bits.
	RSA KeyType = "rsa"
	// EC keys support sizes 256 (P-256) and 384 (P-384).
	EC KeyType = "ec"
)

// ParseKeyType converts a user-supplied name, case-insensitively, to a KeyType.
// "ecdsa" is accepted as an alias of "ec".
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rsa":
		return RSA, nil
	case "ec", "ecdsa":
		return EC, nil
	default:
		return "", fmt.Errorf("%w: keyType=%s", ErrUnsupportedKeyType, s)
	}
}

// GeneratePrivateKey generates an RSA or EC private key of the given size.
func GeneratePrivateKey(keyType KeyType, size int) (crypto.Signer, error) {
	req := &csr.KeyRequest{S: size}

	switch keyType {
	case RSA:
		req.A = "rsa"
	case EC:
		if size != 256 && size != 384 {
			return nil, fmt.Errorf("%w: elliptic key sizes supported are 256 and 384: keySize=%d", ErrUnsupportedKeySize, size)
		}
		req.A = "ecdsa"
	default:
		return nil, fmt.Errorf("%w: keyType=%s", ErrUnsupportedKeyType, keyType)
	}

	key, err := req.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeySize, err)
	}

	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
	return signer, nil
}

// PrivateKeyToPEM encodes key in the traditional OpenSSL format: an
// "RSA PRIVATE KEY" or "EC PRIVATE KEY" block. A non-empty passphrase
// encrypts the block with AES-256-CBC.
func PrivateKeyToPEM(key crypto.PrivateKey, passphrase []byte) ([]byte, error) {
	var (
		blockType string
		der       []byte
		err       error
	)

	switch k := key.(type) {
	case *rsa.PrivateKey:
		blockType, der = "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(k)
	case *ecdsa.PrivateKey:
		blockType = "EC PRIVATE KEY"
		if der, err = x509.MarshalECPrivateKey(k); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}

	if len(passphrase) == 0 {
		return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), nil
	}

	// Legacy PEM encryption is what OpenSSL's traditional format uses.
	block, err := x509.EncryptPEMBlock(rand.Reader, blockType, der, passphrase, x509.PEMCipherAES256) //nolint:staticcheck
	if err != nil {
		return nil, fmt.Errorf("x509pki: failed to encrypt private key: %w", err)
	}
	return pem.EncodeToMemory(block), nil
}

// PrivateKeyToFile writes [PrivateKeyToPEM] output to filename with mode 0600.
func PrivateKeyToFile(key crypto.PrivateKey, filename string, passphrase []byte) error {
	data, err := PrivateKeyToPEM(key, passphrase)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("x509pki: failed to write private key: %w", err)
	}
	return nil
}

// PrivateKeyToOpenSSH encodes key as an "OPENSSH PRIVATE KEY" block,
// encrypted when passphrase is non-empty.
func PrivateKeyToOpenSSH(key crypto.PrivateKey, comment string, passphrase []byte) ([]byte, error) {
	var (
		block *pem.Block
		err   error
	)
	if len(passphrase) == 0 {
		block, err = ssh.MarshalPrivateKey(key, comment)
	} else {
		block, err = ssh.MarshalPrivateKeyWithPassphrase(key, comment, passphrase)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}
	return pem.EncodeToMemory(block), nil
}

// ParsePrivateKeyPEM decodes a PEM private key in PKCS#1, SEC 1 or PKCS#8
// form, decrypting it with passphrase when the block is encrypted.
func ParsePrivateKeyPEM(data, passphrase []byte) (crypto.Signer, error) {
	key, err := helpers.ParsePrivateKeyPEMWithPassword(data, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseKey, err)
	}
	return key, nil
}

// KeyDescription names the algorithm and size of a public key, e.g.
// "2048-bit RSA" or "256-bit ECDSA".
func KeyDescription(pub crypto.PublicKey) string {
	switch k := pub.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("%d-bit RSA", k.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("%d-bit ECDSA", k.Curve.Params().BitSize)
	default:
		return "unknown"
	}
}
