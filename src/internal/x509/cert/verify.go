// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Signature algorithm OIDs.
var (
	oidSignatureSHA1RSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 5}
	oidSignatureSHA256RSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	oidSignatureSHA384RSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	oidSignatureSHA512RSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}
	oidSignatureECDSASHA1   = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 1}
	oidSignatureECDSASHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	oidSignatureECDSASHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	oidSignatureECDSASHA512 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}
)

// Digest algorithm OIDs appearing in RSASSA-PSS parameters.
var (
	oidDigestSHA1   = asn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}
	oidDigestSHA256 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidDigestSHA384 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}
	oidDigestSHA512 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
)

// checkSignature verifies the certificate's own signature over its TBS
// bytes with the given public key. Unknown algorithms and verification
// failures both report false; this is used for self-signed detection
// where failure is a non-error outcome.
func (c *Certificate) checkSignature(pub crypto.PublicKey) bool {
	sigOID := c.envelope.Algorithm.OID
	signed := c.envelope.TBS
	signature := c.envelope.Signature

	if sigOID.Equal(oidPublicKeyEd25519) {
		key, ok := pub.(ed25519.PublicKey)
		return ok && ed25519.Verify(key, signed, signature)
	}

	if sigOID.Equal(oidRSAPSS) {
		hash, ok := pssDigest(c.envelope.Algorithm.Parameters)
		if !ok || !hash.Available() {
			return false
		}
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return false
		}
		digest := hashBytes(hash, signed)
		opts := &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthAuto, Hash: hash}
		return rsa.VerifyPSS(key, hash, digest, signature, opts) == nil
	}

	var hash crypto.Hash
	var isRSA bool
	switch {
	case sigOID.Equal(oidSignatureSHA1RSA):
		hash, isRSA = crypto.SHA1, true
	case sigOID.Equal(oidSignatureSHA256RSA):
		hash, isRSA = crypto.SHA256, true
	case sigOID.Equal(oidSignatureSHA384RSA):
		hash, isRSA = crypto.SHA384, true
	case sigOID.Equal(oidSignatureSHA512RSA):
		hash, isRSA = crypto.SHA512, true
	case sigOID.Equal(oidSignatureECDSASHA1):
		hash = crypto.SHA1
	case sigOID.Equal(oidSignatureECDSASHA256):
		hash = crypto.SHA256
	case sigOID.Equal(oidSignatureECDSASHA384):
		hash = crypto.SHA384
	case sigOID.Equal(oidSignatureECDSASHA512):
		hash = crypto.SHA512
	default:
		return false
	}
	if !hash.Available() {
		return false
	}
	digest := hashBytes(hash, signed)

	if isRSA {
		key, ok := pub.(*rsa.PublicKey)
		return ok && rsa.VerifyPKCS1v15(key, hash, digest, signature) == nil
	}
	key, ok := pub.(*ecdsa.PublicKey)
	return ok && ecdsa.VerifyASN1(key, digest, signature)
}

func hashBytes(hash crypto.Hash, data []byte) []byte {
	h := hash.New()
	h.Write(data)
	return h.Sum(nil)
}

// pssDigest extracts the digest algorithm from RSASSA-PSS-params.
// An absent hashAlgorithm field defaults to SHA-1 per RFC 4055.
func pssDigest(params []byte) (crypto.Hash, bool) {
	if params == nil {
		return crypto.SHA1, true
	}
	der := cryptobyte.String(params)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return 0, false
	}
	var hashField cryptobyte.String
	var present bool
	if !inner.ReadOptionalASN1(&hashField, &present, cbasn1.Tag(0).Constructed().ContextSpecific()) {
		return 0, false
	}
	if !present {
		return crypto.SHA1, true
	}
	var hashAlg cryptobyte.String
	if !hashField.ReadASN1(&hashAlg, cbasn1.SEQUENCE) {
		return 0, false
	}
	var oid asn1.ObjectIdentifier
	if !hashAlg.ReadASN1ObjectIdentifier(&oid) {
		return 0, false
	}
	switch {
	case oid.Equal(oidDigestSHA1):
		return crypto.SHA1, true
	case oid.Equal(oidDigestSHA256):
		return crypto.SHA256, true
	case oid.Equal(oidDigestSHA384):
		return crypto.SHA384, true
	case oid.Equal(oidDigestSHA512):
		return crypto.SHA512, true
	}
	return 0, false
}
