// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Public key algorithm OIDs.
var (
	oidPublicKeyRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidRSAOAEP          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 7}
	oidRSAPSS           = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}
	oidPublicKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
)

// Named curve OIDs.
var (
	oidCurveP224 = asn1.ObjectIdentifier{1, 3, 132, 0, 33}
	oidCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidCurveP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidCurveP521 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

func namedCurveFromOID(oid asn1.ObjectIdentifier) elliptic.Curve {
	switch {
	case oid.Equal(oidCurveP224):
		return elliptic.P224()
	case oid.Equal(oidCurveP256):
		return elliptic.P256()
	case oid.Equal(oidCurveP384):
		return elliptic.P384()
	case oid.Equal(oidCurveP521):
		return elliptic.P521()
	}
	return nil
}

// LoadSubjectPublicKey decodes the subject public key into a standard
// library key type (RSA, ECDSA, or Ed25519).
func (c *Certificate) LoadSubjectPublicKey() (crypto.PublicKey, error) {
	switch {
	case c.keyAlgorithm.OID.Equal(oidPublicKeyRSA), c.keyAlgorithm.OID.Equal(oidRSAPSS):
		return parseRSAPublicKey(c.keyBitString)
	case c.keyAlgorithm.OID.Equal(oidPublicKeyECDSA):
		return parseECDSAPublicKey(c.keyAlgorithm.Parameters, c.keyBitString)
	case c.keyAlgorithm.OID.Equal(oidPublicKeyEd25519):
		if len(c.keyBitString) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: wrong Ed25519 key size %d", ErrUnsupportedPublicKey, len(c.keyBitString))
		}
		return ed25519.PublicKey(c.keyBitString), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPublicKey, c.keyAlgorithm.OID)
}

// parseRSAPublicKey decodes a PKCS#1 RSAPublicKey structure.
func parseRSAPublicKey(bits []byte) (*rsa.PublicKey, error) {
	der := cryptobyte.String(bits)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: invalid RSA public key", ErrUnsupportedPublicKey)
	}

	n := new(big.Int)
	if !inner.ReadASN1Integer(n) {
		return nil, fmt.Errorf("%w: invalid RSA modulus", ErrUnsupportedPublicKey)
	}
	var e int
	if !inner.ReadASN1Integer(&e) {
		return nil, fmt.Errorf("%w: invalid RSA public exponent", ErrUnsupportedPublicKey)
	}
	if n.Sign() <= 0 || e <= 0 {
		return nil, fmt.Errorf("%w: non-positive RSA key component", ErrUnsupportedPublicKey)
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// parseECDSAPublicKey decodes an uncompressed EC point on a named curve.
// params holds the raw algorithm parameter element carrying the curve OID.
func parseECDSAPublicKey(params, bits []byte) (*ecdsa.PublicKey, error) {
	paramsDER := cryptobyte.String(params)
	var curveOID asn1.ObjectIdentifier
	if !paramsDER.ReadASN1ObjectIdentifier(&curveOID) {
		return nil, fmt.Errorf("%w: invalid ECDSA parameters", ErrUnsupportedPublicKey)
	}
	curve := namedCurveFromOID(curveOID)
	if curve == nil {
		return nil, fmt.Errorf("%w: unsupported curve %s", ErrUnsupportedPublicKey, curveOID)
	}
	x, y := elliptic.Unmarshal(curve, bits)
	if x == nil {
		return nil, fmt.Errorf("%w: invalid EC point", ErrUnsupportedPublicKey)
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

// PublicKeyPEM returns the subject public key in its standard textual
// encoding: the SubjectPublicKeyInfo bytes wrapped in a PUBLIC KEY block.
func (c *Certificate) PublicKeyPEM() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: c.spki})
}
