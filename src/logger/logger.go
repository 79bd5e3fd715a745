// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output used by the CLI and tests.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// FileLogger implements Logger by writing structured JSON lines to a writer.
// It is used when the CLI is asked to keep a machine-readable log of
// inspection runs alongside the human-readable output.
//
// FileLogger is safe for concurrent use by multiple goroutines.
type FileLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewFileLogger creates a new structured logger writing to the given writer.
// A nil writer results in a silent logger that discards all messages.
func NewFileLogger(writer io.Writer) *FileLogger {
	if writer == nil {
		return &FileLogger{writer: io.Discard, silent: true}
	}
	return &FileLogger{writer: writer}
}

// logEntry is the JSON shape of a single structured log line.
type logEntry struct {
	Time    string `json:"time"`
	Message string `json:"message"`
}

func (f *FileLogger) write(msg string) {
	if f.silent {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entry := logEntry{
		Time:    time.Now().UTC().Format(time.RFC3339),
		Message: msg,
	}
	if data, err := json.Marshal(entry); err == nil {
		fmt.Fprintln(f.writer, string(data))
	}
}

// Printf formats and records a structured log message.
func (f *FileLogger) Printf(format string, v ...any) { f.write(fmt.Sprintf(format, v...)) }

// Println records a structured log message.
func (f *FileLogger) Println(v ...any) { f.write(fmt.Sprint(v...)) }

// SetOutput sets the output destination for the structured logger.
func (f *FileLogger) SetOutput(w io.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w == nil {
		f.writer = io.Discard
		f.silent = true
		return
	}
	f.writer = w
	f.silent = false
}
