// Package logger provides logging functionality for the blocked tool.
package logger

import (
	"fmt"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Errorf logs a formatted message to the error stream.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger writing to stdout and stderr.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// Errorf writes a formatted message to stderr with thread safety.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
