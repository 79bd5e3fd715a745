// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509exts

import (
	"bytes"
	"encoding/asn1"
	"fmt"
	"net"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509dn "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/dn"
)

// Well-known extension OIDs handled by the registry.
var (
	OIDSubjectKeyID          = asn1.ObjectIdentifier{2, 5, 29, 14}
	OIDKeyUsage              = asn1.ObjectIdentifier{2, 5, 29, 15}
	OIDSubjectAltName        = asn1.ObjectIdentifier{2, 5, 29, 17}
	OIDBasicConstraints      = asn1.ObjectIdentifier{2, 5, 29, 19}
	OIDNameConstraints       = asn1.ObjectIdentifier{2, 5, 29, 30}
	OIDCRLDistributionPoints = asn1.ObjectIdentifier{2, 5, 29, 31}
	OIDCertificatePolicies   = asn1.ObjectIdentifier{2, 5, 29, 32}
	OIDAuthorityKeyID        = asn1.ObjectIdentifier{2, 5, 29, 35}
	OIDExtendedKeyUsage      = asn1.ObjectIdentifier{2, 5, 29, 37}
	OIDAuthorityInfoAccess   = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 1}

	oidAccessMethodOCSP      = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 48, 1}
	oidAccessMethodCAIssuers = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 48, 2}
)

// Value is the tagged union of decoded extension payloads. Exactly the
// types in this package implement it; unrecognized extensions decode to
// [Opaque].
type Value interface{ extensionValue() }

// KeyUsage is the key-usage bit set from RFC 5280 4.2.1.3. Bit i of the
// wire BIT STRING maps to 1<<i. The zero value means no constraints: all
// usages are permitted.
type KeyUsage int

// Key usage bits.
const (
	KeyUsageDigitalSignature KeyUsage = 1 << iota
	KeyUsageNonRepudiation
	KeyUsageKeyEncipherment
	KeyUsageDataEncipherment
	KeyUsageKeyAgreement
	KeyUsageCertSign
	KeyUsageCRLSign
	KeyUsageEncipherOnly
	KeyUsageDecipherOnly
)

// KeyUsageNone is the "no constraints" sentinel: every usage is permitted.
const KeyUsageNone KeyUsage = 0

func (KeyUsage) extensionValue() {}

// keyUsageNames lists the bit names in bit order for rendering.
var keyUsageNames = []struct {
	bit  KeyUsage
	name string
}{
	{KeyUsageDigitalSignature, "Digital Signature"},
	{KeyUsageNonRepudiation, "Non-Repudiation"},
	{KeyUsageKeyEncipherment, "Key Encipherment"},
	{KeyUsageDataEncipherment, "Data Encipherment"},
	{KeyUsageKeyAgreement, "Key Agreement"},
	{KeyUsageCertSign, "Cert Sign"},
	{KeyUsageCRLSign, "CRL Sign"},
	{KeyUsageEncipherOnly, "Encipher Only"},
	{KeyUsageDecipherOnly, "Decipher Only"},
}

// Names returns the names of the set bits in bit order.
func (k KeyUsage) Names() []string {
	var out []string
	for _, entry := range keyUsageNames {
		if k&entry.bit != 0 {
			out = append(out, entry.name)
		}
	}
	return out
}

// String renders the set bits as a comma-separated list, or "None".
func (k KeyUsage) String() string {
	if k == KeyUsageNone {
		return "None"
	}
	return strings.Join(k.Names(), ", ")
}

// BasicConstraints is the decoded basic-constraints extension.
type BasicConstraints struct {
	IsCA           bool
	MaxPathLen     int
	PathLenPresent bool
}

func (BasicConstraints) extensionValue() {}

// SubjectKeyID is the decoded subject key identifier.
type SubjectKeyID []byte

func (SubjectKeyID) extensionValue() {}

// AuthorityKeyID is the decoded authority key identifier (the keyIdentifier
// field only; issuer and serial hints are not projected).
type AuthorityKeyID []byte

func (AuthorityKeyID) extensionValue() {}

// ExtendedKeyUsage is the decoded list of extended-key-usage purpose OIDs.
type ExtendedKeyUsage []asn1.ObjectIdentifier

func (ExtendedKeyUsage) extensionValue() {}

// Contains reports whether the purpose OID is in the list.
func (e ExtendedKeyUsage) Contains(oid asn1.ObjectIdentifier) bool {
	for _, u := range e {
		if u.Equal(oid) {
			return true
		}
	}
	return false
}

// SubjectAltName is the decoded subject alternative name extension.
type SubjectAltName struct {
	x509dn.AlternativeName
}

func (SubjectAltName) extensionValue() {}

// NameConstraints is the decoded name-constraints extension with subtree
// bases rendered as display strings (DNS suffixes, IP ranges, emails, URIs).
type NameConstraints struct {
	Permitted []string
	Excluded  []string
}

func (NameConstraints) extensionValue() {}

// Empty reports whether no subtrees are constrained.
func (n NameConstraints) Empty() bool {
	return len(n.Permitted) == 0 && len(n.Excluded) == 0
}

// CertificatePolicies is the decoded list of certificate policy OIDs.
type CertificatePolicies []asn1.ObjectIdentifier

func (CertificatePolicies) extensionValue() {}

// AuthorityInfoAccess is the decoded authority information access
// extension, keeping only URI locations.
type AuthorityInfoAccess struct {
	OCSP      []string
	CAIssuers []string
}

func (AuthorityInfoAccess) extensionValue() {}

// CRLDistributionPoints is the decoded list of CRL distribution URIs.
type CRLDistributionPoints []string

func (CRLDistributionPoints) extensionValue() {}

// Opaque is the raw value of an extension the registry does not recognize.
type Opaque []byte

func (Opaque) extensionValue() {}

// DecodeFunc decodes a recognized extension payload into its typed value.
type DecodeFunc func(value []byte) (Value, error)

// registry maps extension OIDs to their decode functions.
var registry = map[string]DecodeFunc{
	OIDKeyUsage.String():              decodeKeyUsage,
	OIDBasicConstraints.String():      decodeBasicConstraints,
	OIDSubjectKeyID.String():          decodeSubjectKeyID,
	OIDAuthorityKeyID.String():        decodeAuthorityKeyID,
	OIDExtendedKeyUsage.String():      decodeExtendedKeyUsage,
	OIDSubjectAltName.String():        decodeSubjectAltName,
	OIDNameConstraints.String():       decodeNameConstraints,
	OIDCertificatePolicies.String():   decodeCertificatePolicies,
	OIDAuthorityInfoAccess.String():   decodeAuthorityInfoAccess,
	OIDCRLDistributionPoints.String(): decodeCRLDistributionPoints,
}

// Decode decodes a single extension through the registry. Extensions with
// unrecognized OIDs decode to [Opaque] rather than failing.
func Decode(ext Extension) (Value, error) {
	decode, ok := registry[ext.ID.String()]
	if !ok {
		return Opaque(ext.Value), nil
	}
	v, err := decode(ext.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidExtension, ext.ID, err)
	}
	return v, nil
}

func decodeKeyUsage(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var bits asn1.BitString
	if !der.ReadASN1BitString(&bits) {
		return nil, fmt.Errorf("malformed key usage bit string")
	}

	var usage KeyUsage
	for i := 0; i < 9; i++ {
		if bits.At(i) != 0 {
			usage |= 1 << uint(i)
		}
	}
	return usage, nil
}

func decodeBasicConstraints(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed basic constraints")
	}

	var bc BasicConstraints
	if inner.PeekASN1Tag(cbasn1.BOOLEAN) {
		if !inner.ReadASN1Boolean(&bc.IsCA) {
			return nil, fmt.Errorf("malformed CA flag")
		}
	}
	if inner.PeekASN1Tag(cbasn1.INTEGER) {
		if !inner.ReadASN1Integer(&bc.MaxPathLen) {
			return nil, fmt.Errorf("malformed path length constraint")
		}
		bc.PathLenPresent = true
	}
	return bc, nil
}

func decodeSubjectKeyID(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var keyID cryptobyte.String
	if !der.ReadASN1(&keyID, cbasn1.OCTET_STRING) {
		return nil, fmt.Errorf("malformed subject key identifier")
	}
	return SubjectKeyID(bytes.Clone(keyID)), nil
}

func decodeAuthorityKeyID(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed authority key identifier")
	}

	var keyID cryptobyte.String
	var present bool
	if !inner.ReadOptionalASN1(&keyID, &present, cbasn1.Tag(0).ContextSpecific()) {
		return nil, fmt.Errorf("malformed key identifier field")
	}
	if !present {
		// Issuer/serial form only; nothing to project.
		return AuthorityKeyID(nil), nil
	}
	return AuthorityKeyID(bytes.Clone(keyID)), nil
}

func decodeExtendedKeyUsage(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed extended key usage")
	}

	var eku ExtendedKeyUsage
	for !inner.Empty() {
		var oid asn1.ObjectIdentifier
		if !inner.ReadASN1ObjectIdentifier(&oid) {
			return nil, fmt.Errorf("malformed purpose OID")
		}
		eku = append(eku, oid)
	}
	return eku, nil
}

// GeneralName context tags from RFC 5280 4.2.1.6.
const (
	nameTypeEmail = 1
	nameTypeDNS   = 2
	nameTypeURI   = 6
	nameTypeIP    = 7
)

func decodeSubjectAltName(value []byte) (Value, error) {
	var san SubjectAltName
	err := forEachGeneralName(value, func(tag int, data []byte) error {
		switch tag {
		case nameTypeEmail:
			san.Email = append(san.Email, string(data))
		case nameTypeDNS:
			san.DNS = append(san.DNS, string(data))
		case nameTypeURI:
			san.URI = append(san.URI, string(data))
		case nameTypeIP:
			switch len(data) {
			case net.IPv4len, net.IPv6len:
				san.IP = append(san.IP, net.IP(bytes.Clone(data)))
			default:
				return fmt.Errorf("bad IP address length %d", len(data))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return san, nil
}

// forEachGeneralName walks a GeneralNames SEQUENCE, invoking the callback
// with the context tag number and content bytes of each name.
func forEachGeneralName(value []byte, callback func(tag int, data []byte) error) error {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return fmt.Errorf("malformed GeneralNames")
	}
	for !inner.Empty() {
		var name cryptobyte.String
		var tag cbasn1.Tag
		if !inner.ReadAnyASN1(&name, &tag) {
			return fmt.Errorf("malformed GeneralName")
		}
		if err := callback(int(tag^0x80), name); err != nil {
			return err
		}
	}
	return nil
}

func decodeNameConstraints(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed name constraints")
	}

	var nc NameConstraints
	var err error
	if nc.Permitted, err = decodeGeneralSubtrees(&inner, 0); err != nil {
		return nil, err
	}
	if nc.Excluded, err = decodeGeneralSubtrees(&inner, 1); err != nil {
		return nil, err
	}
	return nc, nil
}

// decodeGeneralSubtrees reads an optional tagged GeneralSubtrees list,
// rendering each subtree base as a display string.
func decodeGeneralSubtrees(der *cryptobyte.String, tag uint8) ([]string, error) {
	var subtrees cryptobyte.String
	var present bool
	if !der.ReadOptionalASN1(&subtrees, &present, cbasn1.Tag(tag).Constructed().ContextSpecific()) {
		return nil, fmt.Errorf("malformed GeneralSubtrees")
	}
	if !present {
		return nil, nil
	}

	var out []string
	for !subtrees.Empty() {
		var subtree cryptobyte.String
		if !subtrees.ReadASN1(&subtree, cbasn1.SEQUENCE) {
			return nil, fmt.Errorf("malformed GeneralSubtree")
		}
		var base cryptobyte.String
		var baseTag cbasn1.Tag
		if !subtree.ReadAnyASN1(&base, &baseTag) {
			return nil, fmt.Errorf("malformed subtree base")
		}
		rendered, err := renderSubtreeBase(int(baseTag^0x80), base)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}

func renderSubtreeBase(tag int, data []byte) (string, error) {
	switch tag {
	case nameTypeEmail, nameTypeDNS, nameTypeURI:
		return string(data), nil
	case nameTypeIP:
		switch len(data) {
		case 2 * net.IPv4len, 2 * net.IPv6len:
			half := len(data) / 2
			ipNet := net.IPNet{IP: net.IP(data[:half]), Mask: net.IPMask(data[half:])}
			return ipNet.String(), nil
		default:
			return "", fmt.Errorf("bad IP subtree length %d", len(data))
		}
	default:
		return fmt.Sprintf("[%d]%x", tag, data), nil
	}
}

func decodeCertificatePolicies(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed certificate policies")
	}

	var policies CertificatePolicies
	for !inner.Empty() {
		var info cryptobyte.String
		if !inner.ReadASN1(&info, cbasn1.SEQUENCE) {
			return nil, fmt.Errorf("malformed policy information")
		}
		var oid asn1.ObjectIdentifier
		if !info.ReadASN1ObjectIdentifier(&oid) {
			return nil, fmt.Errorf("malformed policy OID")
		}
		policies = append(policies, oid)
	}
	return policies, nil
}

func decodeAuthorityInfoAccess(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed authority info access")
	}

	var aia AuthorityInfoAccess
	for !inner.Empty() {
		var desc cryptobyte.String
		if !inner.ReadASN1(&desc, cbasn1.SEQUENCE) {
			return nil, fmt.Errorf("malformed access description")
		}
		var method asn1.ObjectIdentifier
		if !desc.ReadASN1ObjectIdentifier(&method) {
			return nil, fmt.Errorf("malformed access method")
		}
		if !desc.PeekASN1Tag(cbasn1.Tag(nameTypeURI).ContextSpecific()) {
			continue
		}
		var uri cryptobyte.String
		if !desc.ReadASN1(&uri, cbasn1.Tag(nameTypeURI).ContextSpecific()) {
			return nil, fmt.Errorf("malformed access location")
		}
		switch {
		case method.Equal(oidAccessMethodOCSP):
			aia.OCSP = append(aia.OCSP, string(uri))
		case method.Equal(oidAccessMethodCAIssuers):
			aia.CAIssuers = append(aia.CAIssuers, string(uri))
		}
	}
	return aia, nil
}

func decodeCRLDistributionPoints(value []byte) (Value, error) {
	der := cryptobyte.String(value)
	var inner cryptobyte.String
	if !der.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, fmt.Errorf("malformed CRL distribution points")
	}

	var points CRLDistributionPoints
	for !inner.Empty() {
		var dp cryptobyte.String
		if !inner.ReadASN1(&dp, cbasn1.SEQUENCE) {
			return nil, fmt.Errorf("malformed distribution point")
		}
		var dpName cryptobyte.String
		var present bool
		if !dp.ReadOptionalASN1(&dpName, &present, cbasn1.Tag(0).Constructed().ContextSpecific()) {
			return nil, fmt.Errorf("malformed distribution point name")
		}
		if !present {
			continue
		}
		if !dpName.ReadASN1(&dpName, cbasn1.Tag(0).Constructed().ContextSpecific()) {
			return nil, fmt.Errorf("malformed distribution point fullName")
		}
		for !dpName.Empty() {
			if !dpName.PeekASN1Tag(cbasn1.Tag(nameTypeURI).ContextSpecific()) {
				break
			}
			var uri cryptobyte.String
			if !dpName.ReadASN1(&uri, cbasn1.Tag(nameTypeURI).ContextSpecific()) {
				return nil, fmt.Errorf("malformed distribution point URI")
			}
			points = append(points, string(uri))
		}
	}
	return points, nil
}
