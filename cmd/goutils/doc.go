// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// goutils is a command-line tool for schema-typed JSON documents,
// configuration files, certificate signing requests and PKCS#12 bundles.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/goutils/cmd/goutils@latest
//
// # Commands
//
//	json normalize  Decode a document against a schema and encode it in field order
//	json schema     Print the JSON Schema (draft-07) of a type
//	json validate   Report every schema violation in a document
//	csr             Generate a private key and a certificate signing request
//	pfx             Inspect a PKCS#12 bundle
//	config get      Print a value from a JSON, JSONC or YAML file
//	config keys     List the keys of a configuration object
//	config check    Decode a configuration object against a schema
//
// # Examples
//
// Normalize a document, dropping null fields and empty containers:
//
//	goutils json normalize -s family.yaml --exclude-null --null-if-empty --indent 2 input.json
//
// Generate an EC key and CSR with an encrypted key:
//
//	goutils csr -k ec -b 256 --cn example.com --san www.example.com \
//	  --csr-out req.csr --key-out key.pem --encrypt
//
// Show the certificates of a PFX file as a markdown table:
//
//	goutils pfx bundle.pfx --prompt
package main
