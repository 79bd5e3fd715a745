// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	x509exts "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/exts"
)

// projectExtensions caches derived scalar and vector fields from the
// decoded extension set. Absent extensions default to empty or
// unconstrained values rather than failing.
func (c *Certificate) projectExtensions() {
	if usage, ok := x509exts.GetAs[x509exts.KeyUsage](c.extensions, x509exts.OIDKeyUsage); ok {
		c.keyConstraints = usage
	} else {
		c.keyConstraints = x509exts.KeyUsageNone
	}

	if skid, ok := x509exts.GetAs[x509exts.SubjectKeyID](c.extensions, x509exts.OIDSubjectKeyID); ok {
		c.subjectKeyID = skid
	}
	if akid, ok := x509exts.GetAs[x509exts.AuthorityKeyID](c.extensions, x509exts.OIDAuthorityKeyID); ok {
		c.authorityKeyID = akid
	}

	// CA determination requires Basic Constraints to assert CA and the key
	// usage, when present, to permit certificate signing. An absent key
	// usage extension is unconstrained and leaves the decision to Basic
	// Constraints alone.
	if bc, ok := x509exts.GetAs[x509exts.BasicConstraints](c.extensions, x509exts.OIDBasicConstraints); ok && bc.IsCA {
		c.isCA = c.AllowedUsage(x509exts.KeyUsageCertSign)
		if c.isCA && bc.PathLenPresent {
			c.pathLenConstraint = bc.MaxPathLen
			c.pathLenValid = true
		}
	}

	if eku, ok := x509exts.GetAs[x509exts.ExtendedKeyUsage](c.extensions, x509exts.OIDExtendedKeyUsage); ok {
		c.extendedKeyUsage = eku
	}
	if san, ok := x509exts.GetAs[x509exts.SubjectAltName](c.extensions, x509exts.OIDSubjectAltName); ok {
		c.altNames = san.AlternativeName
	}
	if policies, ok := x509exts.GetAs[x509exts.CertificatePolicies](c.extensions, x509exts.OIDCertificatePolicies); ok {
		c.policies = policies
	}
	if nc, ok := x509exts.GetAs[x509exts.NameConstraints](c.extensions, x509exts.OIDNameConstraints); ok {
		c.nameConstraints = nc
	}
	if aia, ok := x509exts.GetAs[x509exts.AuthorityInfoAccess](c.extensions, x509exts.OIDAuthorityInfoAccess); ok {
		c.ocspResponders = aia.OCSP
	}
	if crl, ok := x509exts.GetAs[x509exts.CRLDistributionPoints](c.extensions, x509exts.OIDCRLDistributionPoints); ok {
		c.crlDistributionPoints = crl
	}
}
