// Package logging wires the engine's structured logger, following
// nicolasmd87-gopher3D's pattern of a single process-wide zap.Logger
// handed out to every subsystem: every component here runs off the main
// thread (workers) and needs leveled, field-structured output rather
// than plain Printf lines.
package logging

import "go.uber.org/zap"

var global *zap.Logger

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	global = l
}

// L returns the process-wide logger.
func L() *zap.Logger {
	return global
}

// SetForTesting swaps in a development logger (human-readable, debug level)
// for use from _test.go files; tests never need production JSON encoding.
func SetForTesting() {
	l, err := zap.NewDevelopment()
	if err == nil {
		global = l
	}
}
