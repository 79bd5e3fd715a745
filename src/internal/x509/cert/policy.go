// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"encoding/asn1"
	"strings"

	x509exts "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/exts"
)

// UsageType selects a purpose-specific usage check.
type UsageType int

const (
	// UsageUnspecified performs no restriction check.
	UsageUnspecified UsageType = iota
	// UsageTLSServerAuth checks suitability as a TLS server certificate.
	UsageTLSServerAuth
	// UsageTLSClientAuth checks suitability as a TLS client certificate.
	UsageTLSClientAuth
	// UsageOCSPResponder checks suitability for signing OCSP responses.
	UsageOCSPResponder
	// UsageCertificateAuthority checks suitability as a CA.
	UsageCertificateAuthority
)

// AllowedUsage reports whether every requested key usage bit is permitted.
// A certificate without key usage constraints permits everything.
func (c *Certificate) AllowedUsage(usage x509exts.KeyUsage) bool {
	if c.keyConstraints == x509exts.KeyUsageNone {
		return true
	}
	return c.keyConstraints&usage == usage
}

// HasConstraints reports whether key usage constraints are present and
// intersect the requested bits. Unlike [Certificate.AllowedUsage], an
// unconstrained certificate matches nothing here.
func (c *Certificate) HasConstraints(usage x509exts.KeyUsage) bool {
	if c.keyConstraints == x509exts.KeyUsageNone {
		return false
	}
	return c.keyConstraints&usage != 0
}

// AllowedExtendedUsage reports whether the purpose OID is permitted: an
// empty extended-key-usage list is unconstrained, otherwise the OID must
// be listed.
func (c *Certificate) AllowedExtendedUsage(usage asn1.ObjectIdentifier) bool {
	if len(c.extendedKeyUsage) == 0 {
		return true
	}
	return c.extendedKeyUsage.Contains(usage)
}

// AllowedExtendedUsageName resolves a registered purpose name, such as
// "PKIX.ServerAuth", through the OID registry and checks it with
// [Certificate.AllowedExtendedUsage]. Unknown names report false.
func (c *Certificate) AllowedExtendedUsageName(name string) bool {
	oid, ok := c.registry.OID(name)
	if !ok {
		return false
	}
	return c.AllowedExtendedUsage(oid)
}

// HasExtendedUsage reports whether the purpose OID is explicitly listed.
// Unlike [Certificate.AllowedExtendedUsage], an empty list matches nothing.
func (c *Certificate) HasExtendedUsage(usage asn1.ObjectIdentifier) bool {
	return c.extendedKeyUsage.Contains(usage)
}

// AllowedUsageFor reports whether the certificate is usable for a given
// purpose, following the suggestions in RFC 5280 4.2.1.12.
func (c *Certificate) AllowedUsageFor(usage UsageType) bool {
	switch usage {
	case UsageUnspecified:
		return true

	case UsageTLSServerAuth:
		return (c.AllowedUsage(x509exts.KeyUsageKeyAgreement) ||
			c.AllowedUsage(x509exts.KeyUsageKeyEncipherment) ||
			c.AllowedUsage(x509exts.KeyUsageDigitalSignature)) &&
			c.AllowedExtendedUsageName("PKIX.ServerAuth")

	case UsageTLSClientAuth:
		return (c.AllowedUsage(x509exts.KeyUsageDigitalSignature) ||
			c.AllowedUsage(x509exts.KeyUsageKeyAgreement)) &&
			c.AllowedExtendedUsageName("PKIX.ClientAuth")

	case UsageOCSPResponder:
		return (c.AllowedUsage(x509exts.KeyUsageDigitalSignature) ||
			c.AllowedUsage(x509exts.KeyUsageNonRepudiation)) &&
			c.AllowedExtendedUsageName("PKIX.OCSPSigning")

	case UsageCertificateAuthority:
		return c.IsCA()
	}
	return false
}

// MatchesDNSName reports whether the certificate was issued for the given
// hostname. DNS alternative names are consulted first; when none exist the
// subject common name is used as a legacy fallback (RFC 6125 6.4.4).
func (c *Certificate) MatchesDNSName(name string) bool {
	if name == "" {
		return false
	}

	issued := c.altNames.DNS
	if len(issued) == 0 {
		issued = c.SubjectInfo("Name")
	}

	for _, pattern := range issued {
		if hostWildcardMatch(pattern, name) {
			return true
		}
	}
	return false
}

// hostWildcardMatch matches a hostname against an issued name where a
// single leftmost "*" label matches exactly one non-empty label. There is
// no multi-label or mid-label wildcard matching.
func hostWildcardMatch(pattern, host string) bool {
	if pattern == "" || host == "" {
		return false
	}
	if !strings.HasPrefix(pattern, "*.") {
		return strings.EqualFold(pattern, host)
	}

	patternLabels := strings.Split(pattern, ".")
	hostLabels := strings.Split(host, ".")
	if len(patternLabels) != len(hostLabels) {
		return false
	}
	if hostLabels[0] == "" {
		return false
	}
	for i := 1; i < len(patternLabels); i++ {
		if !strings.EqualFold(patternLabels[i], hostLabels[i]) {
			return false
		}
	}
	return true
}

// PolicyNames returns the certificate policy OIDs resolved through the
// registry, falling back to dotted-decimal form for unknown OIDs.
func (c *Certificate) PolicyNames() []string {
	return c.lookupOIDs(c.policies)
}

// ExtendedUsageNames returns the extended-key-usage OIDs resolved through
// the registry, falling back to dotted-decimal form for unknown OIDs.
func (c *Certificate) ExtendedUsageNames() []string {
	return c.lookupOIDs(c.extendedKeyUsage)
}

func (c *Certificate) lookupOIDs(oidList []asn1.ObjectIdentifier) []string {
	var out []string
	for _, oid := range oidList {
		out = append(out, c.registry.Name(oid))
	}
	return out
}
