package logger

import "context"

// noopLogger discards all log output. Used in tests.
type noopLogger struct{}

// NewNoop returns a Logger that discards everything.
func NewNoop() Logger { return &noopLogger{} }

func (n *noopLogger) Debug(ctx context.Context, message string, fields ...Field)            {}
func (n *noopLogger) Info(ctx context.Context, message string, fields ...Field)             {}
func (n *noopLogger) Warn(ctx context.Context, message string, fields ...Field)             {}
func (n *noopLogger) Error(ctx context.Context, message string, err error, fields ...Field) {}
func (n *noopLogger) Fatal(ctx context.Context, message string, err error, fields ...Field) {}
func (n *noopLogger) WithComponent(component string) Logger                                 { return n }
func (n *noopLogger) SetLevel(level string)                                                 {}
