// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509dn provides decoded distinguished-name and alternative-name
// containers for X.509 certificates. Names are immutable after parsing and
// cache their raw DER encoding so equality checks and digests operate on
// the original bytes rather than a re-serialization.
package x509dn
