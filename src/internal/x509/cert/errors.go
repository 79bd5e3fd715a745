// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownHash indicates that a caller-selected hash name is not in
	// the fingerprint hash table.
	ErrUnknownHash = errors.New("x509cert: unknown hash algorithm")

	// ErrHashUnavailable indicates that a known hash algorithm is not
	// linked into this build. For the legacy SHA-1 key digest this error
	// is deferred: decoding succeeds and the accessor fails at call time.
	ErrHashUnavailable = errors.New("x509cert: hash algorithm unavailable in this build")

	// ErrUnsupportedPublicKey indicates a subject public key algorithm the
	// key loader does not support.
	ErrUnsupportedPublicKey = errors.New("x509cert: unsupported public key algorithm")
)

// ErrorKind classifies certificate decode failures.
type ErrorKind int

const (
	// KindStructural marks a missing, malformed, or wrongly tagged field.
	KindStructural ErrorKind = iota + 1
	// KindSemantic marks a cross-field consistency rule violation.
	KindSemantic
	// KindTrailingData marks extra bytes after the expected structure.
	KindTrailingData
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindSemantic:
		return "semantic"
	case KindTrailingData:
		return "trailing data"
	}
	return "unknown"
}

// DecodeError is the fatal error type returned by [Parse]. It names the
// field being decoded and the rule or tag expectation that was violated.
// Construction never returns a partial certificate alongside it.
type DecodeError struct {
	Kind   ErrorKind
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("x509cert: %s error decoding %s: %s", e.Kind, e.Field, e.Reason)
}

func structuralErr(field, reason string) error {
	return &DecodeError{Kind: KindStructural, Field: field, Reason: reason}
}

func semanticErr(field, reason string) error {
	return &DecodeError{Kind: KindSemantic, Field: field, Reason: reason}
}

func trailingErr(field, reason string) error {
	return &DecodeError{Kind: KindTrailingData, Field: field, Reason: reason}
}
