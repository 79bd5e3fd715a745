// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	x509cert "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/cert"
	x509certs "github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/internal/x509/oids"
	"github.com/H0llyW00dzZ/x509-cert-inspector/src/logger"
)

var (
	// ErrInputFileRequired indicates that no input certificate file was provided.
	ErrInputFileRequired = errors.New("cli: input certificate file is required")

	// ErrHostMismatch indicates that the certificate does not cover the requested hostname.
	ErrHostMismatch = errors.New("cli: certificate does not match hostname")
)

// OperationPerformed reports whether the last Execute call completed an
// inspection. The main package uses it to decide on a completion message.
var OperationPerformed bool

var (
	inputFile       string
	outputFile      string
	fingerprintHash string
	matchHost       string
	tableFormat     bool
	pemKeyOnly      bool
	oidsFile        string
	logFile         string
)

// Execute runs the root command and returns the first error encountered.
// An optional logger receives progress output; when omitted a CLI logger
// is created.
func Execute(ctx context.Context, version string, logs ...logger.Logger) error {
	var log logger.Logger
	if len(logs) > 0 && logs[0] != nil {
		log = logs[0]
	} else {
		log = logger.NewCLILogger()
	}

	OperationPerformed = false

	rootCmd := &cobra.Command{
		Use:           "x509-cert-inspector -f INPUT_FILE [FLAGS]",
		Short:         "X.509 certificate inspector",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd, log)
		},
	}

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input certificate file (PEM, DER, or PKCS7)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().StringVar(&fingerprintHash, "fingerprint", "", "print the certificate fingerprint using HASH (e.g. SHA-256)")
	rootCmd.Flags().StringVar(&matchHost, "match-host", "", "check whether the certificate covers HOSTNAME")
	rootCmd.Flags().BoolVar(&tableFormat, "table", false, "display the certificate as a markdown table")
	rootCmd.Flags().BoolVar(&pemKeyOnly, "pem-key", false, "print only the subject public key in PEM format")
	rootCmd.Flags().StringVar(&oidsFile, "oids", "", "YAML file with additional OID to name mappings")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "append JSON log entries to LOG_FILE")

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

// execCli reads, decodes, and inspects the input certificates. Every
// certificate in the input is rendered in the requested format; policy
// checks such as hostname matching apply to the first certificate.
func execCli(cmd *cobra.Command, log logger.Logger) error {
	if inputFile == "" {
		return ErrInputFileRequired
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("cli: opening log file: %w", err)
		}
		defer f.Close()
		log = logger.NewFileLogger(f)
	}

	registry := oids.Default()
	if oidsFile != "" {
		if err := registry.MergeYAMLFile(oidsFile); err != nil {
			return fmt.Errorf("cli: loading OID mappings: %w", err)
		}
	}

	certData, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("cli: reading input file: %w", err)
	}

	decoder := x509certs.New(x509cert.WithRegistry(registry))
	certs, err := decoder.DecodeMultiple(certData)
	if err != nil {
		// Single PKCS7 blobs are not valid as multi-certificate DER,
		// retry through the single-certificate path.
		single, singleErr := decoder.Decode(certData)
		if singleErr != nil {
			return fmt.Errorf("cli: decoding certificate: %w", err)
		}
		certs = []*x509cert.Certificate{single}
	}
	if len(certs) == 0 {
		return fmt.Errorf("cli: no certificates found in %s", inputFile)
	}

	log.Printf("Decoded %d certificate(s) from %s", len(certs), inputFile)

	var out strings.Builder
	for i, c := range certs {
		if i > 0 {
			out.WriteString("\n")
		}
		switch {
		case fingerprintHash != "":
			fp, err := c.Fingerprint(fingerprintHash)
			if err != nil {
				return fmt.Errorf("cli: computing fingerprint: %w", err)
			}
			out.WriteString(fp)
			out.WriteString("\n")
		case pemKeyOnly:
			out.Write(c.PublicKeyPEM())
		case tableFormat:
			out.WriteString(c.RenderTable())
		default:
			out.WriteString(c.String())
		}
	}

	if matchHost != "" {
		if !certs[0].MatchesDNSName(matchHost) {
			return fmt.Errorf("%w: %s", ErrHostMismatch, matchHost)
		}
		log.Printf("Certificate covers hostname %s", matchHost)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("cli: writing output file: %w", err)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), out.String())
	}

	OperationPerformed = true
	return nil
}
