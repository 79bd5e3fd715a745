// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"bytes"
	"crypto"
	"crypto/sha256"
	"fmt"
	"strings"

	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha512"
)

// fingerprintHashes maps caller-facing hash names to hash functions.
var fingerprintHashes = map[string]crypto.Hash{
	"MD5":     crypto.MD5,
	"SHA-1":   crypto.SHA1,
	"SHA1":    crypto.SHA1,
	"SHA-256": crypto.SHA256,
	"SHA256":  crypto.SHA256,
	"SHA-384": crypto.SHA384,
	"SHA384":  crypto.SHA384,
	"SHA-512": crypto.SHA512,
	"SHA512":  crypto.SHA512,
}

// hashByName resolves a caller-selected hash name.
func hashByName(name string) (crypto.Hash, error) {
	hash, ok := fingerprintHashes[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	if !hash.Available() {
		return 0, fmt.Errorf("%w: %q", ErrHashUnavailable, name)
	}
	return hash, nil
}

// Fingerprint hashes the full original certificate encoding with the
// named hash and renders the digest as colon-separated hex octets, such
// as "9F:86:D0:81:...". There is no trailing colon.
func (c *Certificate) Fingerprint(hashName string) (string, error) {
	hash, err := hashByName(hashName)
	if err != nil {
		return "", err
	}
	return formatFingerprint(hashBytes(hash, c.envelope.Raw)), nil
}

// formatFingerprint hex-encodes a digest with a colon after every octet
// except the last.
func formatFingerprint(digest []byte) string {
	var sb strings.Builder
	sb.Grow(len(digest) * 3)
	for i, b := range digest {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// Equal reports whether two certificates carry the same signature bytes,
// signature algorithm, and signed body.
func (c *Certificate) Equal(other *Certificate) bool {
	if c == nil || other == nil {
		return c == other
	}
	return bytes.Equal(c.envelope.Signature, other.envelope.Signature) &&
		c.envelope.Algorithm.Equal(other.envelope.Algorithm) &&
		bytes.Equal(c.envelope.TBS, other.envelope.TBS)
}

// Less imposes a deterministic total order for sorting certificate
// collections: signatures compare lexicographically first, then the
// signed bodies. It carries no semantic trust meaning.
func (c *Certificate) Less(other *Certificate) bool {
	if cmp := bytes.Compare(c.envelope.Signature, other.envelope.Signature); cmp != 0 {
		return cmp < 0
	}
	return bytes.Compare(c.envelope.TBS, other.envelope.TBS) < 0
}

// RawIssuerDNSHA256 returns the SHA-256 digest of the issuer DN encoding.
func (c *Certificate) RawIssuerDNSHA256() []byte {
	digest := sha256.Sum256(c.issuer.Raw())
	return digest[:]
}

// RawSubjectDNSHA256 returns the SHA-256 digest of the subject DN encoding.
func (c *Certificate) RawSubjectDNSHA256() []byte {
	digest := sha256.Sum256(c.subject.Raw())
	return digest[:]
}
