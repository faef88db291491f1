// Package logging wires up the process-wide structured logger. It is
// an external collaborator per §1: the core never logs anything
// itself, but every binary under cmd/ and every agent-facing server
// uses this package so log shape stays consistent across the
// deployment.
package logging

import (
	"fmt"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// New builds a zap.Logger for the given environment ("production" or
// "development"), first calling automaxprocs so GOMAXPROCS reflects
// any cgroup CPU quota the process is actually running under —
// otherwise a container-scheduled agent server silently over-threads
// its Poseidon/curve workers against its real CPU allotment.
func New(environment string) (*zap.Logger, error) {
	if _, err := maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {})); err != nil {
		return nil, fmt.Errorf("logging: setting GOMAXPROCS: %w", err)
	}

	switch environment {
	case "production":
		return zap.NewProduction()
	case "development", "":
		return zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("logging: unknown environment %q", environment)
	}
}

// NewNop returns a logger that discards everything, used by tests and
// by components that accept an optional logger.
func NewNop() *zap.Logger { return zap.NewNop() }

// Sync flushes any buffered log entries, ignoring the common
// "inappropriate ioctl for device" error zap returns when stderr is a
// terminal rather than a real file.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}
