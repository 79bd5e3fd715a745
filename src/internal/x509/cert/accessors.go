// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"encoding/asn1"
	"time"

	x509dn "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/dn"
	x509exts "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/exts"
)

// Raw returns the full original DER encoding of the certificate.
func (c *Certificate) Raw() []byte { return c.envelope.Raw }

// RawTBS returns the DER bytes of the TBSCertificate element the
// signature was computed over.
func (c *Certificate) RawTBS() []byte { return c.envelope.TBS }

// Version returns the X.509 version using the standards 1-based numbering
// (v1 through v3).
func (c *Certificate) Version() int { return c.version }

// SerialNumber returns the serial number as unsigned big-endian bytes.
func (c *Certificate) SerialNumber() []byte { return c.serial }

// SignatureAlgorithm returns the outer signature algorithm identifier.
func (c *Certificate) SignatureAlgorithm() AlgorithmIdentifier { return c.envelope.Algorithm }

// Signature returns the signature bit string contents.
func (c *Certificate) Signature() []byte { return c.envelope.Signature }

// IssuerDN returns the decoded issuer distinguished name.
func (c *Certificate) IssuerDN() *x509dn.Name { return c.issuer }

// SubjectDN returns the decoded subject distinguished name.
func (c *Certificate) SubjectDN() *x509dn.Name { return c.subject }

// RawIssuerDN returns the cached DER encoding of the issuer DN.
func (c *Certificate) RawIssuerDN() []byte { return c.issuer.Raw() }

// RawSubjectDN returns the cached DER encoding of the subject DN.
func (c *Certificate) RawSubjectDN() []byte { return c.subject.Raw() }

// NotBefore returns the start of the validity window.
func (c *Certificate) NotBefore() time.Time { return c.notBefore }

// NotAfter returns the end of the validity window.
func (c *Certificate) NotAfter() time.Time { return c.notAfter }

// SubjectPublicKeyInfo returns the full DER SubjectPublicKeyInfo element.
func (c *Certificate) SubjectPublicKeyInfo() []byte { return c.spki }

// PublicKeyAlgorithm returns the subject public key algorithm identifier.
func (c *Certificate) PublicKeyAlgorithm() AlgorithmIdentifier { return c.keyAlgorithm }

// SubjectPublicKeyBitString returns the raw subject public key bit string
// contents, without the SubjectPublicKeyInfo framing.
func (c *Certificate) SubjectPublicKeyBitString() []byte { return c.keyBitString }

// SubjectPublicKeyBitStringSHA1 returns the SHA-1 digest of the public key
// bit string, used for legacy key-id derivation. It fails with
// [ErrHashUnavailable] when SHA-1 is not linked into the build.
func (c *Certificate) SubjectPublicKeyBitStringSHA1() ([]byte, error) {
	if len(c.keyBitStringSHA1) == 0 {
		return nil, ErrHashUnavailable
	}
	return c.keyBitStringSHA1, nil
}

// IssuerUniqueID returns the rarely used v2 issuer unique identifier.
func (c *Certificate) IssuerUniqueID() []byte { return c.issuerUniqueID }

// SubjectUniqueID returns the rarely used v2 subject unique identifier.
func (c *Certificate) SubjectUniqueID() []byte { return c.subjectUniqueID }

// Extensions returns the decoded extension set. It may be nil for
// certificates without an extensions block.
func (c *Certificate) Extensions() *x509exts.Set { return c.extensions }

// IsCritical reports whether the extension with the given OID is present
// and marked critical.
func (c *Certificate) IsCritical(oid asn1.ObjectIdentifier) bool {
	return c.extensions.Critical(oid)
}

// Constraints returns the cached key usage bit set.
// [x509exts.KeyUsageNone] means the certificate carries no constraints.
func (c *Certificate) Constraints() x509exts.KeyUsage { return c.keyConstraints }

// SubjectKeyID returns the subject key identifier, or nil when absent.
func (c *Certificate) SubjectKeyID() []byte { return c.subjectKeyID }

// AuthorityKeyID returns the authority key identifier, or nil when absent.
func (c *Certificate) AuthorityKeyID() []byte { return c.authorityKeyID }

// IsCA reports whether this certificate may act as a certificate
// authority: Basic Constraints must assert CA and the key usage (when
// present) must permit certificate signing.
func (c *Certificate) IsCA() bool { return c.isCA }

// PathLenConstraint returns the CA path length limit. The boolean is
// false when the certificate is not a CA or carries no limit.
func (c *Certificate) PathLenConstraint() (int, bool) {
	if !c.isCA || !c.pathLenValid {
		return 0, false
	}
	return c.pathLenConstraint, true
}

// ExtendedKeyUsage returns the cached extended-key-usage purpose OIDs.
// An empty list means the certificate is unconstrained.
func (c *Certificate) ExtendedKeyUsage() []asn1.ObjectIdentifier { return c.extendedKeyUsage }

// AlternativeNames returns the subject alternative names.
func (c *Certificate) AlternativeNames() x509dn.AlternativeName { return c.altNames }

// PolicyOIDs returns the certificate policy OIDs.
func (c *Certificate) PolicyOIDs() []asn1.ObjectIdentifier { return c.policies }

// NameConstraints returns the decoded name constraints; the zero value
// means no constraints.
func (c *Certificate) NameConstraints() x509exts.NameConstraints { return c.nameConstraints }

// OCSPResponders returns all OCSP responder URIs.
func (c *Certificate) OCSPResponders() []string { return c.ocspResponders }

// OCSPResponder returns the first OCSP responder URI, or "".
func (c *Certificate) OCSPResponder() string {
	if len(c.ocspResponders) > 0 {
		return c.ocspResponders[0]
	}
	return ""
}

// CRLDistributionPoints returns all CRL distribution URIs.
func (c *Certificate) CRLDistributionPoints() []string { return c.crlDistributionPoints }

// CRLDistributionPoint returns the first CRL distribution URI, or "".
func (c *Certificate) CRLDistributionPoint() string {
	if len(c.crlDistributionPoints) > 0 {
		return c.crlDistributionPoints[0]
	}
	return ""
}

// IsSelfSigned reports the cached self-signed flag: issuer and subject
// are byte-identical and the signature verifies under the certificate's
// own public key.
func (c *Certificate) IsSelfSigned() bool { return c.selfSigned }
