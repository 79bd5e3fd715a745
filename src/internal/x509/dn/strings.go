// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509dn

import (
	"encoding/asn1"
	"fmt"
	"unicode/utf8"

	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/text/encoding/unicode"
)

// parseDirectoryString decodes an ASN.1 DirectoryString (or IA5String)
// value into a Go string based on its tag.
func parseDirectoryString(tag cbasn1.Tag, raw []byte) (string, error) {
	switch tag {
	case cbasn1.PrintableString:
		for _, b := range raw {
			if !isPrintable(b) {
				return "", fmt.Errorf("%w: invalid PrintableString byte %#x", ErrInvalidAttribute, b)
			}
		}
		return string(raw), nil
	case cbasn1.UTF8String:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("%w: invalid UTF8String", ErrInvalidAttribute)
		}
		return string(raw), nil
	case cbasn1.IA5String:
		for _, b := range raw {
			if b >= 0x80 {
				return "", fmt.Errorf("%w: invalid IA5String byte %#x", ErrInvalidAttribute, b)
			}
		}
		return string(raw), nil
	case cbasn1.T61String:
		// TeletexString has no well-defined charset in practice; treat
		// the bytes as Latin-1 compatible, matching common issuers.
		return string(raw), nil
	case cbasn1.Tag(asn1.TagBMPString):
		return parseBMPString(raw)
	default:
		return "", fmt.Errorf("%w: unsupported string tag %v", ErrInvalidAttribute, tag)
	}
}

// isPrintable reports whether b is in the PrintableString alphabet. The
// asterisk and ampersand are tolerated for compatibility with deployed
// certificates, matching common parser behavior.
func isPrintable(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		'\'' <= b && b <= ')' ||
		'+' <= b && b <= '/' ||
		b == ' ' ||
		b == ':' ||
		b == '=' ||
		b == '?' ||
		b == '*' ||
		b == '&'
}

// parseBMPString decodes a BMPString (UTF-16BE without surrogate pairs
// outside the BMP) into a UTF-8 Go string.
func parseBMPString(raw []byte) (string, error) {
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("%w: odd-length BMPString", ErrInvalidAttribute)
	}
	decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAttribute, err)
	}
	return string(decoded), nil
}
