// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"bytes"
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// asn1NullBytes is the DER encoding of an ASN.1 NULL value.
var asn1NullBytes = []byte{0x05, 0x00}

// AlgorithmIdentifier is a decoded ASN.1 AlgorithmIdentifier. The raw DER
// element bytes are cached so consistency checks compare byte-for-byte
// rather than structurally.
type AlgorithmIdentifier struct {
	OID        asn1.ObjectIdentifier
	Parameters []byte // full DER element of the parameters field, nil when absent

	raw []byte
}

// Raw returns the cached DER bytes of the full AlgorithmIdentifier element.
func (a AlgorithmIdentifier) Raw() []byte { return a.raw }

// Equal reports whether two algorithm identifiers have byte-identical
// DER encodings.
func (a AlgorithmIdentifier) Equal(b AlgorithmIdentifier) bool {
	return bytes.Equal(a.raw, b.raw)
}

// hasNullParameters reports whether the parameters field is present and
// encodes an ASN.1 NULL.
func (a AlgorithmIdentifier) hasNullParameters() bool {
	return bytes.Equal(a.Parameters, asn1NullBytes)
}

// parseAlgorithmIdentifier reads one AlgorithmIdentifier SEQUENCE from der.
func parseAlgorithmIdentifier(der *cryptobyte.String, field string) (AlgorithmIdentifier, error) {
	var ai AlgorithmIdentifier

	var element cryptobyte.String
	if !der.ReadASN1Element(&element, cbasn1.SEQUENCE) {
		return ai, structuralErr(field, "expected AlgorithmIdentifier SEQUENCE")
	}
	ai.raw = bytes.Clone(element)

	var body cryptobyte.String
	if !element.ReadASN1(&body, cbasn1.SEQUENCE) {
		return ai, structuralErr(field, "malformed AlgorithmIdentifier")
	}
	if !body.ReadASN1ObjectIdentifier(&ai.OID) {
		return ai, structuralErr(field, "malformed algorithm OID")
	}
	if !body.Empty() {
		var params cryptobyte.String
		var tag cbasn1.Tag
		if !body.ReadAnyASN1Element(&params, &tag) {
			return ai, structuralErr(field, "malformed algorithm parameters")
		}
		ai.Parameters = bytes.Clone(params)
	}
	if !body.Empty() {
		return ai, trailingErr(field, "extra data after algorithm parameters")
	}
	return ai, nil
}

// SignedEnvelope is the outer signed structure of a certificate: the raw
// to-be-signed body, the signature bytes, and the outer algorithm
// identifier. The certificate decoder consumes it by composition.
type SignedEnvelope struct {
	Raw       []byte // full DER certificate
	TBS       []byte // full TBSCertificate SEQUENCE element
	Algorithm AlgorithmIdentifier
	Signature []byte // right-aligned signature bit string contents
}

// ParseEnvelope splits a DER certificate into its signed envelope. Extra
// bytes after the outer SEQUENCE are a fatal trailing-data error.
func ParseEnvelope(der []byte) (*SignedEnvelope, error) {
	env := &SignedEnvelope{Raw: bytes.Clone(der)}

	input := cryptobyte.String(der)
	var outer cryptobyte.String
	if !input.ReadASN1(&outer, cbasn1.SEQUENCE) {
		return nil, structuralErr("certificate", "expected outer SEQUENCE")
	}
	if !input.Empty() {
		return nil, trailingErr("certificate", "extra data after certificate")
	}

	var tbs cryptobyte.String
	if !outer.ReadASN1Element(&tbs, cbasn1.SEQUENCE) {
		return nil, structuralErr("TBSCertificate", "expected SEQUENCE")
	}
	env.TBS = bytes.Clone(tbs)

	alg, err := parseAlgorithmIdentifier(&outer, "signature algorithm")
	if err != nil {
		return nil, err
	}
	env.Algorithm = alg

	var signature asn1.BitString
	if !outer.ReadASN1BitString(&signature) {
		return nil, structuralErr("signature", "expected BIT STRING")
	}
	env.Signature = signature.RightAlign()

	if !outer.Empty() {
		return nil, trailingErr("certificate", "extra data after signature")
	}
	return env, nil
}
