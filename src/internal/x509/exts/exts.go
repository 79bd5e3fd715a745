// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509exts

import (
	"bytes"
	"encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrInvalidExtensions indicates a malformed extensions SEQUENCE.
	ErrInvalidExtensions = errors.New("x509exts: invalid extensions sequence")

	// ErrInvalidExtension indicates a malformed single Extension value.
	ErrInvalidExtension = errors.New("x509exts: invalid extension")
)

// Extension is a single raw certificate extension: its type OID, the
// criticality flag, and the undecoded inner value bytes.
type Extension struct {
	ID       asn1.ObjectIdentifier
	Critical bool
	Value    []byte
}

// Set is the ordered, immutable extension set decoded from a certificate.
// Recognized extensions are decoded once through the registry into typed
// values; unrecognized extensions stay accessible by OID in raw form.
type Set struct {
	list     []Extension
	typed    map[string]Value
	critical map[string]bool
}

// ParseSet decodes an extensions set from the raw bytes of the Extensions
// SEQUENCE element. Recognized extension payloads are decoded eagerly;
// a malformed payload of a known type is a fatal error. When the same OID
// appears more than once, only the first occurrence enters the typed view.
func ParseSet(der []byte) (*Set, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) {
		return nil, ErrInvalidExtensions
	}
	if !input.Empty() {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidExtensions)
	}

	s := &Set{
		typed:    make(map[string]Value),
		critical: make(map[string]bool),
	}
	for !inner.Empty() {
		var extDER cryptobyte.String
		if !inner.ReadASN1(&extDER, cbasn1.SEQUENCE) {
			return nil, ErrInvalidExtensions
		}
		ext, err := parseExtension(extDER)
		if err != nil {
			return nil, err
		}
		s.list = append(s.list, ext)

		key := ext.ID.String()
		if ext.Critical {
			s.critical[key] = true
		}
		if _, seen := s.typed[key]; seen {
			continue
		}
		value, err := Decode(ext)
		if err != nil {
			return nil, err
		}
		s.typed[key] = value
	}

	return s, nil
}

// parseExtension decodes one Extension SEQUENCE body: OID, optional
// critical BOOLEAN (default false), and the OCTET STRING value.
func parseExtension(der cryptobyte.String) (Extension, error) {
	var ext Extension
	if !der.ReadASN1ObjectIdentifier(&ext.ID) {
		return ext, fmt.Errorf("%w: malformed OID", ErrInvalidExtension)
	}
	if der.PeekASN1Tag(cbasn1.BOOLEAN) {
		if !der.ReadASN1Boolean(&ext.Critical) {
			return ext, fmt.Errorf("%w: malformed critical flag", ErrInvalidExtension)
		}
	}
	var value cryptobyte.String
	if !der.ReadASN1(&value, cbasn1.OCTET_STRING) {
		return ext, fmt.Errorf("%w: malformed value", ErrInvalidExtension)
	}
	ext.Value = bytes.Clone(value)
	return ext, nil
}

// Empty reports whether the set contains no extensions.
func (s *Set) Empty() bool { return s == nil || len(s.list) == 0 }

// All returns the extensions in wire order.
func (s *Set) All() []Extension {
	if s == nil {
		return nil
	}
	return s.list
}

// Get returns the raw extension with the given OID, if present.
func (s *Set) Get(oid asn1.ObjectIdentifier) (Extension, bool) {
	if s == nil {
		return Extension{}, false
	}
	for _, ext := range s.list {
		if ext.ID.Equal(oid) {
			return ext, true
		}
	}
	return Extension{}, false
}

// Critical reports whether the extension with the given OID is present
// and marked critical.
func (s *Set) Critical(oid asn1.ObjectIdentifier) bool {
	if s == nil {
		return false
	}
	return s.critical[oid.String()]
}

// Typed returns the decoded typed value for the given OID, if present.
// Unrecognized extensions yield an [Opaque] value.
func (s *Set) Typed(oid asn1.ObjectIdentifier) (Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.typed[oid.String()]
	return v, ok
}

// GetAs returns the decoded value for an OID when it is present and has
// the requested concrete type.
func GetAs[T Value](s *Set, oid asn1.ObjectIdentifier) (T, bool) {
	var zero T
	v, ok := s.Typed(oid)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
