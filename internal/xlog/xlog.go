// Package xlog wraps zap so every package in this module can accept an
// optional logger without importing zap directly in its public API
// surface (callers pass a *zap.Logger; a nil one is replaced by a
// no-op sugared logger).
package xlog

import "go.uber.org/zap"

// Logger is the structured logger used across the codec for
// diagnostics that never affect the outcome of a conversion: the
// convert driver logs the SyncML vObject heuristic firing and the
// input/output byte counts of a finished conversion. Conversion failures
// are always returned as wbxmlerr.Error, never only logged.
type Logger = zap.SugaredLogger

// NopLogger returns a Logger that discards everything, used when a
// caller does not supply one.
func NopLogger() *Logger {
	return zap.NewNop().Sugar()
}

// OrNop returns l unchanged, or a no-op logger if l is nil.
func OrNop(l *zap.Logger) *Logger {
	if l == nil {
		return NopLogger()
	}
	return l.Sugar()
}
