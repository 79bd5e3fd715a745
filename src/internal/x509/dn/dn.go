// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509dn

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrInvalidName indicates a malformed RDNSequence.
	ErrInvalidName = errors.New("x509dn: invalid RDNSequence")

	// ErrInvalidAttribute indicates a malformed AttributeTypeAndValue.
	ErrInvalidAttribute = errors.New("x509dn: invalid AttributeTypeAndValue")
)

// Attribute is a single decoded naming attribute: its type OID and its
// value rendered as a Go string.
type Attribute struct {
	Type  asn1.ObjectIdentifier
	Value string
}

// Name is an immutable decoded distinguished name. It keeps the raw DER
// bytes of the full RDNSequence SEQUENCE element so that comparison and
// hashing never re-serialize.
type Name struct {
	raw   []byte
	attrs []Attribute
}

// Parse decodes a distinguished name from the raw bytes of a DER
// RDNSequence element (including the SEQUENCE header).
func Parse(der []byte) (*Name, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, ErrInvalidName
	}

	n := &Name{raw: bytes.Clone(der)}
	for !inner.Empty() {
		var set cryptobyte.String
		if !inner.ReadASN1(&set, cbasn1.SET) {
			return nil, ErrInvalidName
		}
		for !set.Empty() {
			var atav cryptobyte.String
			if !set.ReadASN1(&atav, cbasn1.SEQUENCE) {
				return nil, ErrInvalidName
			}
			var attr Attribute
			if !atav.ReadASN1ObjectIdentifier(&attr.Type) {
				return nil, ErrInvalidAttribute
			}
			var rawValue cryptobyte.String
			var valueTag cbasn1.Tag
			if !atav.ReadAnyASN1(&rawValue, &valueTag) {
				return nil, ErrInvalidAttribute
			}
			value, err := parseDirectoryString(valueTag, rawValue)
			if err != nil {
				return nil, err
			}
			attr.Value = value
			n.attrs = append(n.attrs, attr)
		}
	}

	return n, nil
}

// Raw returns the cached DER bytes of the full RDNSequence element.
func (n *Name) Raw() []byte { return n.raw }

// Empty reports whether the name contains no attributes.
func (n *Name) Empty() bool { return len(n.attrs) == 0 }

// Attributes returns the decoded naming attributes in wire order.
func (n *Name) Attributes() []Attribute { return n.attrs }

// Equal reports whether two names have byte-identical DER encodings.
func (n *Name) Equal(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return bytes.Equal(n.raw, other.raw)
}

// Values returns all attribute values with the given type OID, in wire order.
func (n *Name) Values(typ asn1.ObjectIdentifier) []string {
	var out []string
	for _, attr := range n.attrs {
		if attr.Type.Equal(typ) {
			out = append(out, attr.Value)
		}
	}
	return out
}

// shortLabels maps well-known DN attribute OIDs to their conventional
// short labels for one-line rendering.
var shortLabels = map[string]string{
	"2.5.4.3":              "CN",
	"2.5.4.5":              "SERIALNUMBER",
	"2.5.4.6":              "C",
	"2.5.4.7":              "L",
	"2.5.4.8":              "ST",
	"2.5.4.9":              "STREET",
	"2.5.4.10":             "O",
	"2.5.4.11":             "OU",
	"2.5.4.12":             "T",
	"1.2.840.113549.1.9.1": "E",
}

// String renders the name as a comma-separated attribute list, such as
// "CN=example.com,O=Example Corp,C=US". Attributes keep wire order;
// unknown types render with their dotted-decimal OID.
func (n *Name) String() string {
	var buf bytes.Buffer
	for i, attr := range n.attrs {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, ok := shortLabels[attr.Type.String()]
		if !ok {
			label = attr.Type.String()
		}
		fmt.Fprintf(&buf, "%s=%s", label, attr.Value)
	}
	return buf.String()
}
