// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-bank. Every command run carries a
// child logger in its context (see FromContext) enriched with the operation
// id, and logs go to stderr as JSON so stdout holds only command output.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the application logger tagged with role. Entries carry
// "time" and the calling function name in "func"; the global level starts at
// debug until [SetLevel] narrows it.
func NewLogger(role string) *Logger {
	return newLogger(os.Stderr, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel changes the global zerolog level. level is a zerolog level name
// such as "debug", "info" or "warn"; an empty string leaves the level as is.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used by tests and by the default bank.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx with zerolog's WithContext,
// or zerolog's default context logger when there is none. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
