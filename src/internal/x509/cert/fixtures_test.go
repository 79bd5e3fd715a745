// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	x509cert "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/cert"
)

var (
	oidECDSAWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	oidECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	oidRSAEncryption   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
)

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	der, err := asn1.Marshal(v)
	require.NoError(t, err)
	return der
}

func derSequence(t *testing.T, content []byte) []byte {
	t.Helper()
	return mustMarshal(t, asn1.RawValue{Class: asn1.ClassUniversal, Tag: asn1.TagSequence, IsCompound: true, Bytes: content})
}

func derContext(t *testing.T, tag int, compound bool, content []byte) []byte {
	t.Helper()
	return mustMarshal(t, asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: tag, IsCompound: compound, Bytes: content})
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func marshalDN(t *testing.T, name pkix.Name) []byte {
	t.Helper()
	der, err := asn1.Marshal(name.ToRDNSequence())
	require.NoError(t, err)
	return der
}

type testValidity struct {
	NotBefore, NotAfter time.Time
}

func marshalValidity(t *testing.T) []byte {
	t.Helper()
	return mustMarshal(t, testValidity{
		NotBefore: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func newTestKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

func marshalSPKI(t *testing.T, key *ecdsa.PrivateKey) []byte {
	t.Helper()
	spki, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return spki
}

// assembleCert wraps a TBSCertificate element with an ECDSA-SHA256
// signature computed over it.
func assembleCert(t *testing.T, key *ecdsa.PrivateKey, tbs []byte) []byte {
	t.Helper()
	algDER := derSequence(t, mustMarshal(t, oidECDSAWithSHA256))
	digest := sha256.Sum256(tbs)
	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	require.NoError(t, err)
	sigBits := mustMarshal(t, asn1.BitString{Bytes: sig, BitLength: 8 * len(sig)})
	return derSequence(t, concat(tbs, algDER, sigBits))
}

// rawV1Cert builds a version 1 self-signed ECDSA certificate with the
// given common name and no extensions.
func rawV1Cert(t *testing.T, key *ecdsa.PrivateKey, commonName string) []byte {
	t.Helper()
	dn := marshalDN(t, pkix.Name{CommonName: commonName})
	algDER := derSequence(t, mustMarshal(t, oidECDSAWithSHA256))
	tbs := derSequence(t, concat(
		mustMarshal(t, big.NewInt(42)),
		algDER,
		dn,
		marshalValidity(t),
		dn,
		marshalSPKI(t, key),
	))
	return assembleCert(t, key, tbs)
}

// newTestCA generates and parses a fully featured v3 self-signed CA
// certificate, returning the parsed form and its DER encoding.
func newTestCA(t *testing.T) (*x509cert.Certificate, []byte) {
	t.Helper()
	key := newTestKey(t)

	policy := asn1.ObjectIdentifier{2, 23, 140, 1, 2, 1}
	policyOID, err := x509.OIDFromInts([]uint64{2, 23, 140, 1, 2, 1})
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(0x1234),
		Subject: pkix.Name{
			CommonName:   "Test Root",
			Organization: []string{"Example Corp"},
		},
		NotBefore:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:              time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            1,
		DNSNames:              []string{"example.com", "*.dev.example.com"},
		PolicyIdentifiers:     []asn1.ObjectIdentifier{policy},
		Policies:              []x509.OID{policyOID},
		OCSPServer:            []string{"http://ocsp.example.com"},
		CRLDistributionPoints: []string{"http://crl.example.com/root.crl"},
		SubjectKeyId:          []byte{0xde, 0xad, 0xbe, 0xef},
		AuthorityKeyId:        []byte{0xde, 0xad, 0xbe, 0xef},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	parsed, err := x509cert.Parse(der)
	require.NoError(t, err)
	return parsed, der
}
