// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509dn_test

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509dn "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/dn"
)

// marshalDN builds the DER RDNSequence element for a pkix.Name.
func marshalDN(t *testing.T, name pkix.Name) []byte {
	t.Helper()
	der, err := asn1.Marshal(name.ToRDNSequence())
	require.NoError(t, err)
	return der
}

func TestParse(t *testing.T) {
	der := marshalDN(t, pkix.Name{
		CommonName:         "example.com",
		Organization:       []string{"Example Corp"},
		OrganizationalUnit: []string{"Engineering"},
		Country:            []string{"US"},
	})

	name, err := x509dn.Parse(der)
	require.NoError(t, err)

	assert.False(t, name.Empty())
	assert.Equal(t, der, name.Raw())

	assert.Equal(t, []string{"example.com"}, name.Values(asn1.ObjectIdentifier{2, 5, 4, 3}))
	assert.Equal(t, []string{"Example Corp"}, name.Values(asn1.ObjectIdentifier{2, 5, 4, 10}))
	assert.Nil(t, name.Values(asn1.ObjectIdentifier{2, 5, 4, 7}), "no locality attribute")
}

func TestParseEmptySequence(t *testing.T) {
	// An empty RDNSequence is legal and yields an empty name.
	name, err := x509dn.Parse([]byte{0x30, 0x00})
	require.NoError(t, err)
	assert.True(t, name.Empty())
	assert.Equal(t, "", name.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		der  []byte
	}{
		{"empty input", nil},
		{"not a sequence", []byte{0x02, 0x01, 0x00}},
		{"truncated", []byte{0x30, 0x05, 0x31, 0x03}},
		{"set without sequence", []byte{0x30, 0x04, 0x31, 0x02, 0x02, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x509dn.Parse(tt.der)
			assert.Error(t, err)
		})
	}
}

func TestString(t *testing.T) {
	der := marshalDN(t, pkix.Name{
		CommonName:   "example.com",
		Organization: []string{"Example Corp"},
		Country:      []string{"US"},
	})

	name, err := x509dn.Parse(der)
	require.NoError(t, err)

	// pkix serializes in reverse field order: country first, CN last.
	assert.Equal(t, "C=US,O=Example Corp,CN=example.com", name.String())
}

func TestEqual(t *testing.T) {
	derA := marshalDN(t, pkix.Name{CommonName: "a"})
	derB := marshalDN(t, pkix.Name{CommonName: "b"})

	a, err := x509dn.Parse(derA)
	require.NoError(t, err)
	a2, err := x509dn.Parse(derA)
	require.NoError(t, err)
	b, err := x509dn.Parse(derB)
	require.NoError(t, err)

	assert.True(t, a.Equal(a2))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestParseBMPString(t *testing.T) {
	// AttributeTypeAndValue with a BMPString (UTF-16BE) common name.
	atav := []byte{
		0x30, 0x0f,
		0x06, 0x03, 0x55, 0x04, 0x03, // 2.5.4.3
		0x1e, 0x08, 0x00, 0x41, 0x00, 0x42, 0x00, 0x43, 0x00, 0x2a, // "ABC*"
	}
	der := append([]byte{0x30, 0x13, 0x31, 0x11}, atav...)

	name, err := x509dn.Parse(der)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC*"}, name.Values(asn1.ObjectIdentifier{2, 5, 4, 3}))
}

func TestParseRejectsOddBMPString(t *testing.T) {
	der := []byte{
		0x30, 0x0e, 0x31, 0x0c,
		0x30, 0x0a,
		0x06, 0x03, 0x55, 0x04, 0x03,
		0x1e, 0x03, 0x00, 0x41, 0x00, // odd byte count
	}
	_, err := x509dn.Parse(der)
	assert.Error(t, err)
}

func TestAlternativeNameValues(t *testing.T) {
	alt := x509dn.AlternativeName{
		DNS:   []string{"example.com", "www.example.com"},
		Email: []string{"admin@example.com"},
		URI:   []string{"https://example.com"},
		IP:    []net.IP{net.ParseIP("192.0.2.1")},
	}

	assert.False(t, alt.Empty())
	assert.Equal(t, []string{"example.com", "www.example.com"}, alt.Values("DNS"))
	assert.Equal(t, []string{"admin@example.com"}, alt.Values("RFC822"))
	assert.Equal(t, []string{"https://example.com"}, alt.Values("URI"))
	assert.Equal(t, []string{"192.0.2.1"}, alt.Values("IP"))
	assert.Nil(t, alt.Values("OTHER"))

	var empty x509dn.AlternativeName
	assert.True(t, empty.Empty())
}
