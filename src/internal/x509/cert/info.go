// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"fmt"
	"strconv"
	"time"

	x509dn "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/dn"
)

// timeString renders a validity bound in the fixed summary format.
func timeString(t time.Time) string {
	return t.UTC().Format("2006/01/02 15:04:05 UTC")
}

func hexUpper(b []byte) string { return fmt.Sprintf("%X", b) }

// SubjectInfo answers generic key to value-list queries about the subject.
// Supported keys are DN attribute names ("Name", "Email", "Organization",
// ...), alternative name kinds ("DNS", "RFC822", "URI", "IP"), and the
// synthetic keys below. Unknown keys return an empty list.
//
//	X509.Certificate.version     1-based version number
//	X509.Certificate.serial      hex serial number
//	X509.Certificate.start       validity start
//	X509.Certificate.end         validity end
//	X509.Certificate.dn_bits     hex raw subject DN
//	X509.Certificate.v2.key_id   hex v2 subject unique ID
//	X509v3.SubjectKeyIdentifier  hex subject key ID
func (c *Certificate) SubjectInfo(key string) []string {
	switch key {
	case "X509.Certificate.version":
		return []string{strconv.Itoa(c.version)}
	case "X509.Certificate.serial":
		return []string{hexUpper(c.serial)}
	case "X509.Certificate.start":
		return []string{timeString(c.notBefore)}
	case "X509.Certificate.end":
		return []string{timeString(c.notAfter)}
	case "X509.Certificate.dn_bits":
		return []string{hexUpper(c.subject.Raw())}
	case "X509.Certificate.v2.key_id":
		return []string{hexUpper(c.subjectUniqueID)}
	case "X509v3.SubjectKeyIdentifier":
		return []string{hexUpper(c.subjectKeyID)}
	case "DNS", "RFC822", "URI", "IP":
		return c.altNames.Values(key)
	}
	return c.dnValues(c.subject, key)
}

// IssuerInfo answers the same queries as [Certificate.SubjectInfo] for the
// issuer. The key-id synthetic keys resolve to the authority key ID and
// the v2 issuer unique ID.
func (c *Certificate) IssuerInfo(key string) []string {
	switch key {
	case "X509.Certificate.dn_bits":
		return []string{hexUpper(c.issuer.Raw())}
	case "X509.Certificate.v2.key_id":
		return []string{hexUpper(c.issuerUniqueID)}
	case "X509v3.AuthorityKeyIdentifier":
		return []string{hexUpper(c.authorityKeyID)}
	}
	return c.dnValues(c.issuer, key)
}

// dnValues resolves a friendly attribute key through the registry and
// collects matching DN attribute values.
func (c *Certificate) dnValues(name *x509dn.Name, key string) []string {
	oid, ok := c.registry.OID(key)
	if !ok {
		return nil
	}
	return name.Values(oid)
}
