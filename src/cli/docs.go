// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 certificate inspector.
// It implements a Cobra-based CLI that decodes certificates from PEM, DER, or PKCS7
// input and renders text summaries, markdown tables, fingerprints, and public keys,
// with optional hostname matching and user-supplied OID name mappings.
// The package handles file I/O, context cancellation, and integrates with the logger
// package for structured output and error reporting.
package cli
