// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-cert-inspector is a command-line tool for decoding and inspecting
// X.509 certificates.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-inspector/cmd/x509-cert-inspector@latest
//
// # Usage
//
//	x509-cert-inspector -f INPUT_CERT [FLAGS]
//
// # Flags
//
//	-f, --file          Input certificate file (PEM, DER, or PKCS7) [required]
//	-o, --output        Destination file (default: stdout)
//	    --fingerprint   Print the certificate fingerprint using HASH (e.g. SHA-256)
//	    --match-host    Check whether the certificate covers HOSTNAME
//	    --table         Display the certificate as a markdown table
//	    --pem-key       Print only the subject public key in PEM format
//	    --oids          YAML file with additional OID to name mappings
//	    --log-file      Append JSON log entries to LOG_FILE
//
// # Examples
//
// Print a full text summary of a certificate:
//
//	x509-cert-inspector -f cert.pem
//
// Compute a SHA-256 fingerprint:
//
//	x509-cert-inspector -f cert.pem --fingerprint SHA-256
//
// Check hostname coverage:
//
//	x509-cert-inspector -f cert.pem --match-host example.com
//
// Display the certificate as a markdown table:
//
//	x509-cert-inspector -f cert.pem --table
//
// Extract the subject public key:
//
//	x509-cert-inspector -f cert.pem --pem-key > key.pem
package main
