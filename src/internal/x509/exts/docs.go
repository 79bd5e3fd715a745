// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509exts decodes X.509 v3 certificate extensions. A registry maps
// each recognized extension OID to a decode function producing a typed value;
// unrecognized extensions decode to an opaque raw value and remain queryable
// by OID. The [Set] container preserves wire order and criticality and keeps
// at most one typed value per OID.
package x509exts
