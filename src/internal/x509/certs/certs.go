// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509cert "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/cert"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// Decoder provides methods to decode and encode [X.509] certificates from
// PEM, raw DER, or PKCS7 input. It maintains internal configuration such
// as the certificate block type and the parse options forwarded to the
// underlying decoder.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Decoder struct {
	certBlockType string
	parseOpts     []x509cert.Option
}

// New creates a new Decoder with default settings. Any options are
// forwarded to [x509cert.Parse] on every decode.
func New(opts ...x509cert.Option) *Decoder {
	return &Decoder{
		certBlockType: "CERTIFICATE",
		parseOpts:     opts,
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (d *Decoder) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != d.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// DecodeMultiple decodes one or more certificates from data. PEM input
// may carry any number of CERTIFICATE blocks; DER input may carry
// back-to-back certificate structures.
func (d *Decoder) DecodeMultiple(data []byte) ([]*x509cert.Certificate, error) {
	if d.IsPEM(data) {
		var certs []*x509cert.Certificate

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			if block.Type != d.certBlockType {
				return nil, ErrInvalidBlockType
			}

			cert, err := x509cert.Parse(block.Bytes, d.parseOpts...)
			if err != nil {
				return nil, err
			}

			certs = append(certs, cert)
			data = rest
		}

		return certs, nil
	}

	var certs []*x509cert.Certificate
	input := cryptobyte.String(data)
	for !input.Empty() {
		var element cryptobyte.String
		if !input.ReadASN1Element(&element, cbasn1.SEQUENCE) {
			return nil, ErrParseCertificate
		}
		cert, err := x509cert.Parse(element, d.parseOpts...)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	return certs, nil
}

// Decode decodes a single certificate from data. Raw DER that is not a
// certificate is retried as PKCS7, taking the first certificate from the
// signed data.
func (d *Decoder) Decode(data []byte) (*x509cert.Certificate, error) {
	if d.IsPEM(data) {
		block, err := d.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509cert.Parse(data, d.parseOpts...)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, pkcsErr := pkcs7.ParsePKCS7(data)
	if pkcsErr != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return x509cert.Parse(p.Content.SignedData.Certificates[0].Raw, d.parseOpts...)
}

// EncodePEM encodes a certificate to PEM format.
func (d *Decoder) EncodePEM(cert *x509cert.Certificate) []byte {
	block := pem.Block{
		Type:  d.certBlockType,
		Bytes: cert.Raw(),
	}
	return pem.EncodeToMemory(&block)
}

// EncodeDER encodes a certificate to DER format.
func (d *Decoder) EncodeDER(cert *x509cert.Certificate) []byte { return cert.Raw() }

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (d *Decoder) EncodeMultiplePEM(certs []*x509cert.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, d.EncodePEM(cert)...)
	}

	return data
}

// EncodeMultipleDER encodes multiple certificates to DER format.
func (d *Decoder) EncodeMultipleDER(certs []*x509cert.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, d.EncodeDER(cert)...)
	}

	return data
}
