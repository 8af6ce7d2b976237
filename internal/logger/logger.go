package logger

import (
	"io"
	"log"
	"os"
)

// Logger is an alias used by packages that take a logger as a dependency.
type Logger = log.Logger

// New returns a standard logger with a consistent service prefix.
func New(service string) *Logger {
	return log.New(os.Stdout, "["+service+"] ", log.LstdFlags|log.Lmicroseconds)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	return log.New(io.Discard, "", 0)
}
