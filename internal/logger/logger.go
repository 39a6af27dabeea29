// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// vocabulary client and the reference backend.
//
// The terminal client must never log to stdout while the TUI owns the
// screen, so [NewClientLogger] writes to a file. The reference backend logs
// JSON to stdout via [NewLogger].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON logger writing to stdout. Every entry carries the
// "role" field, a timestamp and the caller function name under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger builds a logger for the terminal client. Entries go to
// logPath; when logPath is empty a "vocab-client.log" file beside the
// executable is used. If the file cannot be opened output is discarded,
// stdout belongs to the TUI.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "vocab-client.log")
	}

	var out io.Writer = io.Discard
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns an independent copy that inherits all fields.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. It never returns nil;
// without an attached logger zerolog's default (disabled) logger is used.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
