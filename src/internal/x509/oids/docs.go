// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package oids provides an injectable registry mapping object identifiers
// to human-readable names and back. The certificate decoder and renderer
// consume it as a read-only lookup service; callers can extend the built-in
// table with names loaded from a YAML file before injection.
package oids
