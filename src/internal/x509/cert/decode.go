// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"bytes"
	"crypto"
	"encoding/asn1"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509dn "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/dn"
	x509exts "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/exts"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oids"
)

// Certificate is an immutable decoded X.509 certificate. It is constructed
// exactly once by [Parse]; construction either fully succeeds or fails with
// a [DecodeError] and no partial record is observable. All derived fields
// are cached at decode time, so a Certificate is safe to share across
// concurrent readers without synchronization.
type Certificate struct {
	envelope *SignedEnvelope

	version int
	serial  []byte

	issuer  *x509dn.Name
	subject *x509dn.Name

	notBefore time.Time
	notAfter  time.Time

	spki         []byte // full SubjectPublicKeyInfo SEQUENCE element
	keyAlgorithm AlgorithmIdentifier
	keyBitString []byte // right-aligned subjectPublicKey bit string contents

	issuerUniqueID  []byte
	subjectUniqueID []byte

	extensions *x509exts.Set

	// Fields cached from the extension set at decode time.
	keyConstraints        x509exts.KeyUsage
	subjectKeyID          []byte
	authorityKeyID        []byte
	isCA                  bool
	pathLenConstraint     int
	pathLenValid          bool
	extendedKeyUsage      x509exts.ExtendedKeyUsage
	altNames              x509dn.AlternativeName
	policies              []asn1.ObjectIdentifier
	nameConstraints       x509exts.NameConstraints
	ocspResponders        []string
	crlDistributionPoints []string

	selfSigned       bool
	keyBitStringSHA1 []byte

	registry *oids.Registry
}

// Option configures certificate decoding.
type Option func(*parseConfig)

type parseConfig struct {
	registry *oids.Registry
}

// WithRegistry injects the OID name registry used for string queries and
// rendering. Parse uses [oids.Default] when no registry is supplied.
func WithRegistry(reg *oids.Registry) Option {
	return func(cfg *parseConfig) { cfg.registry = reg }
}

// Parse decodes a DER-encoded X.509 certificate.
//
// Construction is all-or-nothing: every structural violation, semantic
// consistency failure (version range, inner/outer algorithm mismatch,
// RSA parameter rules), or trailing-data condition aborts with an error
// describing the offending field.
func Parse(der []byte, opts ...Option) (*Certificate, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = oids.Default()
	}

	env, err := ParseEnvelope(der)
	if err != nil {
		return nil, err
	}
	return parseTBS(env, cfg.registry)
}

// parseTBS drives the decoder through the fixed TBSCertificate grammar.
func parseTBS(env *SignedEnvelope, reg *oids.Registry) (*Certificate, error) {
	c := &Certificate{envelope: env, registry: reg}

	tbs := cryptobyte.String(env.TBS)
	var body cryptobyte.String
	if !tbs.ReadASN1(&body, cbasn1.SEQUENCE) {
		return nil, structuralErr("TBSCertificate", "expected SEQUENCE")
	}

	// Optional explicit [0] version, wire default 0. Wire values above 2
	// are unknown; the stored version uses the standards 1-based numbering.
	var wireVersion int
	if !body.ReadOptionalASN1Integer(&wireVersion, cbasn1.Tag(0).Constructed().ContextSpecific(), 0) {
		return nil, structuralErr("version", "malformed version field")
	}
	if wireVersion < 0 || wireVersion > 2 {
		return nil, semanticErr("version", fmt.Sprintf("unknown X.509 certificate version %d", wireVersion))
	}
	c.version = wireVersion + 1

	serial := new(big.Int)
	if !body.ReadASN1Integer(serial) {
		return nil, structuralErr("serial number", "expected INTEGER")
	}
	c.serial = serial.Bytes()
	if len(c.serial) == 0 {
		c.serial = []byte{0x00}
	}

	inner, err := parseAlgorithmIdentifier(&body, "inner signature algorithm")
	if err != nil {
		return nil, err
	}
	if !inner.Equal(env.Algorithm) {
		return nil, semanticErr("signature algorithm",
			"differing algorithm identifiers in inner and outer fields")
	}

	if c.issuer, err = parseDN(&body, "issuer"); err != nil {
		return nil, err
	}

	var validity cryptobyte.String
	if !body.ReadASN1(&validity, cbasn1.SEQUENCE) {
		return nil, structuralErr("validity", "expected SEQUENCE")
	}
	if c.notBefore, err = parseTime(&validity, "not before"); err != nil {
		return nil, err
	}
	if c.notAfter, err = parseTime(&validity, "not after"); err != nil {
		return nil, err
	}
	if !validity.Empty() {
		return nil, trailingErr("validity", "extra data after notAfter")
	}

	if c.subject, err = parseDN(&body, "subject"); err != nil {
		return nil, err
	}

	if err = c.parseSubjectPublicKeyInfo(&body); err != nil {
		return nil, err
	}

	if c.issuerUniqueID, err = readOptionalBitString(&body, 1, "issuer unique ID"); err != nil {
		return nil, err
	}
	if c.subjectUniqueID, err = readOptionalBitString(&body, 2, "subject unique ID"); err != nil {
		return nil, err
	}

	if err = c.parseExtensions(&body); err != nil {
		return nil, err
	}
	if !body.Empty() {
		return nil, trailingErr("TBSCertificate", "extra data after extensions block")
	}

	c.projectExtensions()

	// Self-signed means the issuer and subject are byte-identical and the
	// certificate verifies under its own key. A verification failure here
	// is not a decode error.
	if bytes.Equal(c.issuer.Raw(), c.subject.Raw()) {
		if pub, err := c.LoadSubjectPublicKey(); err == nil {
			c.selfSigned = c.checkSignature(pub)
		}
	}

	// Legacy key-id digest. When SHA-1 is not linked into the build the
	// digest stays empty and the accessor fails on first use.
	if crypto.SHA1.Available() {
		h := crypto.SHA1.New()
		h.Write(c.keyBitString)
		c.keyBitStringSHA1 = h.Sum(nil)
	}

	return c, nil
}

// parseDN reads one distinguished name element, delegating to the DN
// collaborator and preserving the raw bytes it caches.
func parseDN(body *cryptobyte.String, field string) (*x509dn.Name, error) {
	var element cryptobyte.String
	if !body.ReadASN1Element(&element, cbasn1.SEQUENCE) {
		return nil, structuralErr(field, "expected Name SEQUENCE")
	}
	name, err := x509dn.Parse(element)
	if err != nil {
		return nil, structuralErr(field, err.Error())
	}
	return name, nil
}

// parseSubjectPublicKeyInfo reads the public-key SEQUENCE and enforces the
// RFC 4055 RSA parameter rules: plain RSA keys require NULL parameters,
// PSS-restricted keys must match the outer signature algorithm, and OAEP
// keys are rejected.
func (c *Certificate) parseSubjectPublicKeyInfo(body *cryptobyte.String) error {
	var spki cryptobyte.String
	if !body.ReadASN1Element(&spki, cbasn1.SEQUENCE) {
		return structuralErr("subject public key info", "expected SEQUENCE")
	}
	c.spki = bytes.Clone(spki)

	var inner cryptobyte.String
	if !spki.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return structuralErr("subject public key info", "malformed SEQUENCE")
	}

	keyAlg, err := parseAlgorithmIdentifier(&inner, "public key algorithm")
	if err != nil {
		return err
	}
	c.keyAlgorithm = keyAlg

	switch {
	case keyAlg.OID.Equal(oidPublicKeyRSA):
		if !keyAlg.hasNullParameters() {
			return semanticErr("public key algorithm", "RSA parameters field must contain NULL")
		}
	case keyAlg.OID.Equal(oidRSAPSS):
		if !keyAlg.Equal(c.envelope.Algorithm) {
			return semanticErr("public key algorithm",
				"RSASSA-PSS key algorithm identifier does not match signature algorithm")
		}
	case keyAlg.OID.Equal(oidRSAOAEP):
		return semanticErr("public key algorithm", "RSAES-OAEP subject keys are not supported")
	}

	var keyBits asn1.BitString
	if !inner.ReadASN1BitString(&keyBits) {
		return structuralErr("subject public key", "expected BIT STRING")
	}
	c.keyBitString = keyBits.RightAlign()

	if !inner.Empty() {
		return trailingErr("subject public key info", "extra data after subject public key")
	}
	return nil
}

// readOptionalBitString reads an optional context-tagged constructed value
// containing a BIT STRING (the v2 unique identifier fields).
func readOptionalBitString(body *cryptobyte.String, tag uint8, field string) ([]byte, error) {
	var wrapper cryptobyte.String
	var present bool
	if !body.ReadOptionalASN1(&wrapper, &present, cbasn1.Tag(tag).Constructed().ContextSpecific()) {
		return nil, structuralErr(field, "malformed optional field")
	}
	if !present {
		return nil, nil
	}
	var bits asn1.BitString
	if !wrapper.ReadASN1BitString(&bits) {
		return nil, structuralErr(field, "expected BIT STRING")
	}
	return bits.RightAlign(), nil
}

// parseExtensions reads the optional [3] extensions block. Any other tag
// at this position is a tag-mismatch failure.
func (c *Certificate) parseExtensions(body *cryptobyte.String) error {
	if body.Empty() {
		return nil
	}
	extTag := cbasn1.Tag(3).Constructed().ContextSpecific()
	if !body.PeekASN1Tag(extTag) {
		return structuralErr("TBSCertificate", "unknown tag where extensions block was expected")
	}
	var wrapper cryptobyte.String
	if !body.ReadASN1(&wrapper, extTag) {
		return structuralErr("extensions", "malformed extensions block")
	}

	set, err := x509exts.ParseSet(wrapper)
	if err != nil {
		return structuralErr("extensions", err.Error())
	}
	c.extensions = set
	return nil
}

// parseTime reads one UTCTime or GeneralizedTime value.
func parseTime(der *cryptobyte.String, field string) (time.Time, error) {
	var t time.Time
	switch {
	case der.PeekASN1Tag(cbasn1.UTCTime):
		var utc cryptobyte.String
		if !der.ReadASN1(&utc, cbasn1.UTCTime) {
			return t, structuralErr(field, "malformed UTCTime")
		}
		s := string(utc)

		format := "0601021504Z0700"
		var err error
		t, err = time.Parse(format, s)
		if err != nil {
			format = "060102150405Z0700"
			t, err = time.Parse(format, s)
		}
		if err != nil {
			return t, structuralErr(field, "invalid UTCTime "+s)
		}
		if serialized := t.Format(format); serialized != s {
			return t, structuralErr(field, "non-canonical UTCTime "+s)
		}
		// UTCTime only encodes years prior to 2050 (RFC 5280 4.1.2.5.1).
		if t.Year() >= 2050 {
			t = t.AddDate(-100, 0, 0)
		}
	case der.PeekASN1Tag(cbasn1.GeneralizedTime):
		if !der.ReadASN1GeneralizedTime(&t) {
			return t, structuralErr(field, "malformed GeneralizedTime")
		}
	default:
		return t, structuralErr(field, "unsupported time encoding")
	}
	return t, nil
}
