// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/cli"
)

const version = "1.3.3.7-testing"

// writeTestCert writes a self-signed PEM certificate into dir and returns
// its path.
func writeTestCert(t *testing.T, dir string) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "cli.example.com"},
		NotBefore:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC),
		DNSNames:     []string{"cli.example.com"},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(dir, "cert.pem")
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(path, pemData, 0644))
	return path
}

func TestExecute_NoInputFile(t *testing.T) {
	os.Args = []string{"cmd"}
	err := cli.Execute(context.Background(), version)
	assert.ErrorIs(t, err, cli.ErrInputFileRequired)
}

func TestExecute_NonExistentFile(t *testing.T) {
	os.Args = []string{"cmd", "-f", "/tmp/nonexistent-file-12345.cer"}
	err := cli.Execute(context.Background(), version)
	assert.Error(t, err)
}

func TestExecute_InvalidFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.cer")
	require.NoError(t, os.WriteFile(tmpFile, []byte("invalid data"), 0644))

	os.Args = []string{"cmd", "-f", tmpFile}
	err := cli.Execute(context.Background(), version)
	assert.Error(t, err)
}

func TestExecute_Summary(t *testing.T) {
	dir := t.TempDir()
	certPath := writeTestCert(t, dir)
	outPath := filepath.Join(dir, "summary.txt")

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath}
	require.NoError(t, cli.Execute(context.Background(), version))
	assert.True(t, cli.OperationPerformed)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Subject Name: cli.example.com")
	assert.Contains(t, string(out), "Public Key:")
}

func TestExecute_Fingerprint(t *testing.T) {
	dir := t.TempDir()
	certPath := writeTestCert(t, dir)
	outPath := filepath.Join(dir, "fp.txt")

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--fingerprint", "SHA-256"}
	require.NoError(t, cli.Execute(context.Background(), version))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-F]{2}(:[0-9A-F]{2}){31}\n$`, string(out))
}

func TestExecute_MatchHost(t *testing.T) {
	dir := t.TempDir()
	certPath := writeTestCert(t, dir)
	outPath := filepath.Join(dir, "out.txt")

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--match-host", "cli.example.com"}
	require.NoError(t, cli.Execute(context.Background(), version))

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--match-host", "other.example.com"}
	err := cli.Execute(context.Background(), version)
	assert.ErrorIs(t, err, cli.ErrHostMismatch)
}

func TestExecute_PEMKey(t *testing.T) {
	dir := t.TempDir()
	certPath := writeTestCert(t, dir)
	outPath := filepath.Join(dir, "key.pem")

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--pem-key"}
	require.NoError(t, cli.Execute(context.Background(), version))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	block, _ := pem.Decode(out)
	require.NotNil(t, block)
	assert.Equal(t, "PUBLIC KEY", block.Type)
}

func TestExecute_LogFile(t *testing.T) {
	dir := t.TempDir()
	certPath := writeTestCert(t, dir)
	outPath := filepath.Join(dir, "out.txt")
	logPath := filepath.Join(dir, "run.log")

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--log-file", logPath}
	require.NoError(t, cli.Execute(context.Background(), version))

	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Decoded 1 certificate(s)")
}

func TestExecute_OIDsFile(t *testing.T) {
	dir := t.TempDir()
	certPath := writeTestCert(t, dir)
	outPath := filepath.Join(dir, "out.txt")

	oidsPath := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(oidsPath, []byte("oids:\n  \"2.5.4.3\": \"Common Name\"\n"), 0644))

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--oids", oidsPath}
	require.NoError(t, cli.Execute(context.Background(), version))

	os.Args = []string{"cmd", "-f", certPath, "-o", outPath, "--oids", filepath.Join(dir, "missing.yaml")}
	assert.Error(t, cli.Execute(context.Background(), version))
}
