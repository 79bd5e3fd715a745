// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oids

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOID indicates that a dotted-decimal OID string could not be parsed.
var ErrInvalidOID = errors.New("oids: invalid dotted-decimal OID")

// Registry maps object identifiers to human-readable names and back.
// It is populated with a built-in table of well-known X.509 identifiers
// and can be extended before being handed to the certificate decoder.
//
// A Registry must not be modified once shared across goroutines; build it
// up front, then treat it as read-only.
type Registry struct {
	nameByOID map[string]string
	oidByName map[string]string
}

// Default returns a fresh registry populated with the built-in table of
// well-known DN attribute, extension, key-usage, and algorithm identifiers.
func Default() *Registry {
	r := &Registry{
		nameByOID: make(map[string]string, len(builtin)),
		oidByName: make(map[string]string, len(builtin)),
	}
	for oid, name := range builtin {
		r.nameByOID[oid] = name
		r.oidByName[name] = oid
	}
	return r
}

// Register adds or replaces a single OID to name mapping.
func (r *Registry) Register(oid asn1.ObjectIdentifier, name string) {
	r.nameByOID[oid.String()] = name
	r.oidByName[name] = oid.String()
}

// Lookup returns the registered name for an OID, reporting whether it is known.
func (r *Registry) Lookup(oid asn1.ObjectIdentifier) (string, bool) {
	name, ok := r.nameByOID[oid.String()]
	return name, ok
}

// Name returns the registered name for an OID, falling back to its
// dotted-decimal form when the OID is not in the registry.
func (r *Registry) Name(oid asn1.ObjectIdentifier) string {
	if name, ok := r.nameByOID[oid.String()]; ok {
		return name
	}
	return oid.String()
}

// OID resolves a registered name back to its object identifier.
func (r *Registry) OID(name string) (asn1.ObjectIdentifier, bool) {
	dotted, ok := r.oidByName[name]
	if !ok {
		return nil, false
	}
	oid, err := ParseDotted(dotted)
	if err != nil {
		return nil, false
	}
	return oid, true
}

// ParseDotted parses a dotted-decimal string such as "2.5.4.3" into an
// [asn1.ObjectIdentifier].
func ParseDotted(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOID, s)
	}

	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOID, s)
		}
		oid[i] = n
	}
	return oid, nil
}

// builtin is the default OID to name table. Names follow the conventions
// used in certificate summaries: DN attributes use plain field names,
// PKIX identifiers use a "PKIX." prefix, and X.509v3 extensions use an
// "X509v3." prefix.
var builtin = map[string]string{
	// DN attribute types
	"2.5.4.3":               "Name",
	"2.5.4.5":               "Serial Number",
	"2.5.4.6":               "Country",
	"2.5.4.7":               "Locality",
	"2.5.4.8":               "State",
	"2.5.4.9":               "Street",
	"2.5.4.10":              "Organization",
	"2.5.4.11":              "Organizational Unit",
	"2.5.4.12":              "Title",
	"1.2.840.113549.1.9.1":  "Email",

	// Extended key usage purposes
	"1.3.6.1.5.5.7.3.1": "PKIX.ServerAuth",
	"1.3.6.1.5.5.7.3.2": "PKIX.ClientAuth",
	"1.3.6.1.5.5.7.3.3": "PKIX.CodeSigning",
	"1.3.6.1.5.5.7.3.4": "PKIX.EmailProtection",
	"1.3.6.1.5.5.7.3.8": "PKIX.TimeStamping",
	"1.3.6.1.5.5.7.3.9": "PKIX.OCSPSigning",

	// Public key and signature algorithms
	"1.2.840.113549.1.1.1":  "RSA",
	"1.2.840.113549.1.1.5":  "SHA1-RSA",
	"1.2.840.113549.1.1.7":  "RSAES-OAEP",
	"1.2.840.113549.1.1.10": "RSA-PSS",
	"1.2.840.113549.1.1.11": "SHA256-RSA",
	"1.2.840.113549.1.1.12": "SHA384-RSA",
	"1.2.840.113549.1.1.13": "SHA512-RSA",
	"1.2.840.10045.2.1":     "ECDSA",
	"1.2.840.10045.4.1":     "ECDSA-SHA1",
	"1.2.840.10045.4.3.2":   "ECDSA-SHA256",
	"1.2.840.10045.4.3.3":   "ECDSA-SHA384",
	"1.2.840.10045.4.3.4":   "ECDSA-SHA512",
	"1.3.101.112":           "Ed25519",

	// Named curves
	"1.2.840.10045.3.1.7": "P-256",
	"1.3.132.0.33":        "P-224",
	"1.3.132.0.34":        "P-384",
	"1.3.132.0.35":        "P-521",

	// Certificate extensions and access descriptors
	"2.5.29.14":         "X509v3.SubjectKeyIdentifier",
	"2.5.29.15":         "X509v3.KeyUsage",
	"2.5.29.17":         "X509v3.SubjectAlternativeName",
	"2.5.29.18":         "X509v3.IssuerAlternativeName",
	"2.5.29.19":         "X509v3.BasicConstraints",
	"2.5.29.30":         "X509v3.NameConstraints",
	"2.5.29.31":         "X509v3.CRLDistributionPoints",
	"2.5.29.32":         "X509v3.CertificatePolicies",
	"2.5.29.32.0":       "X509v3.AnyPolicy",
	"2.5.29.35":         "X509v3.AuthorityKeyIdentifier",
	"2.5.29.37":         "X509v3.ExtendedKeyUsage",
	"1.3.6.1.5.5.7.1.1": "PKIX.AuthorityInformationAccess",
	"1.3.6.1.5.5.7.48.1": "PKIX.OCSP",
	"1.3.6.1.5.5.7.48.2": "PKIX.CertificateAuthorityIssuers",
}
