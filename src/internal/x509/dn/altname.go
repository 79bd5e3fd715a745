// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509dn

import "net"

// AlternativeName holds the GeneralName values decoded from a subject or
// issuer alternative name extension, grouped by name type.
type AlternativeName struct {
	DNS   []string
	Email []string
	URI   []string
	IP    []net.IP
}

// Empty reports whether no alternative names are present.
func (a *AlternativeName) Empty() bool {
	return len(a.DNS) == 0 && len(a.Email) == 0 && len(a.URI) == 0 && len(a.IP) == 0
}

// Values returns the alternative name values for a lookup key: "DNS",
// "RFC822" (email), "URI", or "IP". Unknown keys return nil.
func (a *AlternativeName) Values(key string) []string {
	switch key {
	case "DNS":
		return a.DNS
	case "RFC822":
		return a.Email
	case "URI":
		return a.URI
	case "IP":
		ips := make([]string, 0, len(a.IP))
		for _, ip := range a.IP {
			ips = append(ips, ip.String())
		}
		return ips
	}
	return nil
}
