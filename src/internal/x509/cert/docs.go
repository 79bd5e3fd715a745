// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509cert implements a strict [X.509] certificate decoder and
// policy layer on top of raw [DER] input. It provides capabilities to:
//   - Decode the full TBSCertificate body (version, serial, names,
//     validity, public key, unique identifiers, and extensions) without
//     relying on the standard library parser.
//   - Project decoded extensions into typed accessors and evaluate key
//     usage, extended key usage, and hostname matching policy.
//   - Compute fingerprints, key identifiers, and stable identity
//     comparisons for deduplication and ordering.
//   - Render deterministic text and markdown summaries.
//
// Decoding is eager and fail-fast: a certificate that parses successfully
// answers every accessor without further errors.
//
// [X.509]: https://grokipedia.com/page/X.509
// [DER]: https://grokipedia.com/page/X.690
package x509cert
