// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging abstractions for the certificate inspector.
// It offers a human-readable CLI logger for interactive use and a structured
// JSON logger for machine-readable run logs, both behind a common interface
// so commands can switch output modes without changing call sites.
package logger
