// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509cert

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/helper/gc"
)

// summaryDNFields is the fixed field order for the subject and issuer
// sections of the text summary.
var summaryDNFields = []string{
	"Name",
	"Email",
	"Organization",
	"Organizational Unit",
	"Locality",
	"State",
	"Country",
	"IP",
	"DNS",
	"URI",
}

// String renders a deterministic multi-line text summary of the
// certificate: DN fields in fixed order, version, validity window, usage
// constraints, policies, name constraints, endpoints, and the public key
// in PEM form.
func (c *Certificate) String() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	line := func(format string, v ...any) {
		buf.WriteString(fmt.Sprintf(format, v...))
		buf.WriteByte('\n')
	}

	for _, field := range summaryDNFields {
		for _, val := range c.SubjectInfo(field) {
			line("Subject %s: %s", field, val)
		}
	}
	for _, field := range summaryDNFields {
		for _, val := range c.IssuerInfo(field) {
			line("Issuer %s: %s", field, val)
		}
	}

	line("Version: %d", c.version)
	line("Not valid before: %s", timeString(c.notBefore))
	line("Not valid after: %s", timeString(c.notAfter))

	line("Constraints:")
	if names := c.keyConstraints.Names(); len(names) == 0 {
		line(" None")
	} else {
		for _, name := range names {
			line("   %s", name)
		}
	}

	if policies := c.PolicyNames(); len(policies) != 0 {
		line("Policies:")
		for _, policy := range policies {
			line("   %s", policy)
		}
	}

	if usages := c.ExtendedUsageNames(); len(usages) != 0 {
		line("Extended Constraints:")
		for _, usage := range usages {
			line("   %s", usage)
		}
	}

	if !c.nameConstraints.Empty() {
		line("Name Constraints:")
		if len(c.nameConstraints.Permitted) != 0 {
			line("   Permit %s", strings.Join(c.nameConstraints.Permitted, " "))
		}
		if len(c.nameConstraints.Excluded) != 0 {
			line("   Exclude %s", strings.Join(c.nameConstraints.Excluded, " "))
		}
	}

	if responder := c.OCSPResponder(); responder != "" {
		line("OCSP responder %s", responder)
	}
	if crl := c.CRLDistributionPoint(); crl != "" {
		line("CRL %s", crl)
	}

	line("Signature algorithm: %s", c.registry.Name(c.envelope.Algorithm.OID))
	line("Serial number: %s", hexUpper(c.serial))

	if len(c.authorityKeyID) != 0 {
		line("Authority keyid: %s", hexUpper(c.authorityKeyID))
	}
	if len(c.subjectKeyID) != 0 {
		line("Subject keyid: %s", hexUpper(c.subjectKeyID))
	}

	buf.WriteString("Public Key:\n")
	buf.WriteString(string(c.PublicKeyPEM()))

	return string(buf.Bytes())
}

// RenderTable renders the certificate's headline facts as a markdown
// table using tablewriter.
func (c *Certificate) RenderTable() string {
	var sb strings.Builder
	table := tablewriter.NewTable(&sb,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Field", "Value"})

	selfSigned := "no"
	if c.selfSigned {
		selfSigned = "yes"
	}
	ca := "no"
	if c.isCA {
		ca = "yes"
	}

	rows := [][]string{
		{"Subject", c.subject.String()},
		{"Issuer", c.issuer.String()},
		{"Version", fmt.Sprintf("%d", c.version)},
		{"Serial", hexUpper(c.serial)},
		{"Not Before", timeString(c.notBefore)},
		{"Not After", timeString(c.notAfter)},
		{"Key Algorithm", c.registry.Name(c.keyAlgorithm.OID)},
		{"Signature Algorithm", c.registry.Name(c.envelope.Algorithm.OID)},
		{"Key Usage", c.keyConstraints.String()},
		{"Extended Usage", strings.Join(c.ExtendedUsageNames(), ", ")},
		{"CA", ca},
		{"Self-Signed", selfSigned},
	}
	table.Bulk(rows)
	table.Render()

	return sb.String()
}
