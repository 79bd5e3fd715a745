// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oids_test

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oids"
)

func TestDefaultLookups(t *testing.T) {
	tests := []struct {
		name string
		oid  asn1.ObjectIdentifier
		want string
	}{
		{"common name", asn1.ObjectIdentifier{2, 5, 4, 3}, "Name"},
		{"organization", asn1.ObjectIdentifier{2, 5, 4, 10}, "Organization"},
		{"server auth", asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}, "PKIX.ServerAuth"},
		{"sha256 with rsa", asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}, "SHA256-RSA"},
		{"key usage ext", asn1.ObjectIdentifier{2, 5, 29, 15}, "X509v3.KeyUsage"},
	}

	registry := oids.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := registry.Lookup(tt.oid)
			require.True(t, ok, "Lookup() should find %v", tt.oid)
			assert.Equal(t, tt.want, got)

			// Name lookups must round-trip back to the same OID.
			back, ok := registry.OID(tt.want)
			require.True(t, ok, "OID() should find %q", tt.want)
			assert.True(t, back.Equal(tt.oid))
		})
	}
}

func TestNameFallsBackToDotted(t *testing.T) {
	registry := oids.Default()
	unknown := asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1}
	assert.Equal(t, "1.3.6.1.4.1.99999.1", registry.Name(unknown))
}

func TestRegisterOverrides(t *testing.T) {
	registry := oids.Default()
	oid := asn1.ObjectIdentifier{2, 5, 4, 3}
	registry.Register(oid, "CommonName")
	assert.Equal(t, "CommonName", registry.Name(oid))

	// Default() hands out fresh registries, so other callers are unaffected.
	assert.Equal(t, "Name", oids.Default().Name(oid))
}

func TestParseDotted(t *testing.T) {
	oid, err := oids.ParseDotted("1.3.6.1.5.5.7.3.1")
	require.NoError(t, err)
	assert.True(t, oid.Equal(asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 1}))

	for _, bad := range []string{"", "1..2", "1.2.x", "nope"} {
		_, err := oids.ParseDotted(bad)
		assert.ErrorIs(t, err, oids.ErrInvalidOID, "ParseDotted(%q)", bad)
	}
}

func TestMergeYAML(t *testing.T) {
	registry := oids.Default()
	data := []byte(`
oids:
  "1.3.6.1.4.1.11129.2.4.2": "CT Precertificate SCTs"
  "2.16.840.1.113730.1.13": "Netscape Comment"
`)
	require.NoError(t, registry.MergeYAML(data))

	assert.Equal(t, "CT Precertificate SCTs",
		registry.Name(asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 11129, 2, 4, 2}))
	assert.Equal(t, "Netscape Comment",
		registry.Name(asn1.ObjectIdentifier{2, 16, 840, 1, 113730, 1, 13}))
}

func TestMergeYAMLRejectsBadInput(t *testing.T) {
	registry := oids.Default()
	assert.Error(t, registry.MergeYAML([]byte("oids: [not, a, map]")))
	assert.ErrorIs(t, registry.MergeYAML([]byte("oids:\n  \"not-an-oid\": x")), oids.ErrInvalidOID)
}
