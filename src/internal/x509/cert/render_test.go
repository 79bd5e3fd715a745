// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509cert "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/cert"
)

func TestSubjectInfo(t *testing.T) {
	cert, _ := newTestCA(t)

	assert.Equal(t, []string{"Test Root"}, cert.SubjectInfo("Name"))
	assert.Equal(t, []string{"Example Corp"}, cert.SubjectInfo("Organization"))
	assert.Equal(t, []string{"3"}, cert.SubjectInfo("X509.Certificate.version"))
	assert.Equal(t, []string{"1234"}, cert.SubjectInfo("X509.Certificate.serial"))
	assert.Equal(t, []string{"DEADBEEF"}, cert.SubjectInfo("X509v3.SubjectKeyIdentifier"))
	assert.Equal(t, []string{"example.com", "*.dev.example.com"}, cert.SubjectInfo("DNS"))
	assert.Nil(t, cert.SubjectInfo("No Such Key"))

	start := cert.SubjectInfo("X509.Certificate.start")
	require.Len(t, start, 1)
	assert.Equal(t, "2024/01/01 00:00:00 UTC", start[0])
}

func TestIssuerInfo(t *testing.T) {
	cert, _ := newTestCA(t)

	// Self-signed: issuer DN answers match the subject DN.
	assert.Equal(t, cert.SubjectInfo("Name"), cert.IssuerInfo("Name"))
	assert.Equal(t, []string{"DEADBEEF"}, cert.IssuerInfo("X509v3.AuthorityKeyIdentifier"))
}

func TestString(t *testing.T) {
	cert, _ := newTestCA(t)
	out := cert.String()

	for _, want := range []string{
		"Subject Name: Test Root",
		"Subject Organization: Example Corp",
		"Subject DNS: example.com",
		"Issuer Name: Test Root",
		"Version: 3",
		"Not valid before: 2024/01/01 00:00:00 UTC",
		"Not valid after: 2034/01/01 00:00:00 UTC",
		"Constraints:",
		"Digital Signature",
		"Cert Sign",
		"CRL Sign",
		"Extended Constraints:",
		"PKIX.ServerAuth",
		"OCSP responder http://ocsp.example.com",
		"CRL http://crl.example.com/root.crl",
		"Signature algorithm: ECDSA-SHA256",
		"Serial number: 1234",
		"Subject keyid: DEADBEEF",
		"Public Key:",
		"-----BEGIN PUBLIC KEY-----",
	} {
		assert.Contains(t, out, want)
	}

	// Deterministic output.
	assert.Equal(t, out, cert.String())
}

func TestStringUnconstrained(t *testing.T) {
	key := newTestKey(t)
	cert, err := x509cert.Parse(rawV1Cert(t, key, "legacy.example.com"))
	require.NoError(t, err)

	out := cert.String()
	assert.Contains(t, out, "Version: 1")
	assert.Contains(t, out, "Constraints:\n None\n")
	assert.NotContains(t, out, "Extended Constraints:")
	assert.NotContains(t, out, "OCSP responder")
}

func TestRenderTable(t *testing.T) {
	cert, _ := newTestCA(t)
	out := cert.RenderTable()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "|"))
	for _, want := range []string{
		"Test Root",
		"ECDSA-SHA256",
		"2024/01/01 00:00:00 UTC",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPublicKeyPEM(t *testing.T) {
	cert, _ := newTestCA(t)
	pemKey := cert.PublicKeyPEM()

	assert.True(t, strings.HasPrefix(string(pemKey), "-----BEGIN PUBLIC KEY-----"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(pemKey)), "-----END PUBLIC KEY-----"))
}
