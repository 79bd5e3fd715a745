// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509cert "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/cert"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
)

// newTestCertDER generates a minimal self-signed certificate for framing
// round trips.
func newTestCertDER(t *testing.T, commonName string) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return der
}

func TestDecodeDER(t *testing.T) {
	der := newTestCertDER(t, "der.example.com")
	decoder := x509certs.New()

	cert, err := decoder.Decode(der)
	require.NoError(t, err)
	assert.Equal(t, []string{"der.example.com"}, cert.SubjectInfo("Name"))
	assert.Equal(t, der, decoder.EncodeDER(cert))
}

func TestDecodePEM(t *testing.T) {
	der := newTestCertDER(t, "pem.example.com")
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	decoder := x509certs.New()

	assert.True(t, decoder.IsPEM(pemData))
	assert.False(t, decoder.IsPEM(der))

	cert, err := decoder.Decode(pemData)
	require.NoError(t, err)
	assert.Equal(t, []string{"pem.example.com"}, cert.SubjectInfo("Name"))
}

func TestDecodeRejectsWrongBlockType(t *testing.T) {
	block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{0x01}})
	_, err := x509certs.New().Decode(block)
	assert.ErrorIs(t, err, x509certs.ErrInvalidBlockType)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := x509certs.New().Decode([]byte("not a certificate"))
	assert.Error(t, err)
}

func TestDecodeMultiplePEM(t *testing.T) {
	derA := newTestCertDER(t, "a.example.com")
	derB := newTestCertDER(t, "b.example.com")
	bundle := append(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derA}),
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derB})...,
	)

	certs, err := x509certs.New().DecodeMultiple(bundle)
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, []string{"a.example.com"}, certs[0].SubjectInfo("Name"))
	assert.Equal(t, []string{"b.example.com"}, certs[1].SubjectInfo("Name"))
}

func TestDecodeMultipleDER(t *testing.T) {
	derA := newTestCertDER(t, "a.example.com")
	derB := newTestCertDER(t, "b.example.com")

	certs, err := x509certs.New().DecodeMultiple(append(append([]byte{}, derA...), derB...))
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, []string{"a.example.com"}, certs[0].SubjectInfo("Name"))
	assert.Equal(t, []string{"b.example.com"}, certs[1].SubjectInfo("Name"))
}

func TestEncodeRoundTrip(t *testing.T) {
	der := newTestCertDER(t, "roundtrip.example.com")
	decoder := x509certs.New()

	cert, err := decoder.Decode(der)
	require.NoError(t, err)

	pemData := decoder.EncodePEM(cert)
	again, err := decoder.Decode(pemData)
	require.NoError(t, err)
	assert.True(t, cert.Equal(again))

	bundle := decoder.EncodeMultiplePEM([]*x509cert.Certificate{cert, again})
	certs, err := decoder.DecodeMultiple(bundle)
	require.NoError(t, err)
	assert.Len(t, certs, 2)

	derBundle := decoder.EncodeMultipleDER([]*x509cert.Certificate{cert, again})
	assert.Equal(t, append(append([]byte{}, der...), der...), derBundle)
}
