// Package logger defines the structured logging interface used throughout the
// FieldBase service. The production implementation lives in
// internal/infrastructure/monitoring and is backed by zap.
package logger

import (
	"context"
	"time"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(ctx context.Context, message string, fields ...Field)
	Info(ctx context.Context, message string, fields ...Field)
	Warn(ctx context.Context, message string, fields ...Field)
	Error(ctx context.Context, message string, err error, fields ...Field)
	Fatal(ctx context.Context, message string, err error, fields ...Field)

	// WithComponent returns a logger scoped to a named component.
	WithComponent(component string) Logger

	// SetLevel adjusts the minimum level at runtime (config hot reload).
	SetLevel(level string)
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field            { return Field{Key: key, Value: value} }
func Int(key string, value int) Field           { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field       { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field         { return Field{Key: key, Value: value} }
func Any(key string, value interface{}) Field   { return Field{Key: key, Value: value} }
func Duration(key string, d time.Duration) Field { return Field{Key: key, Value: d.String()} }

// Error creates the conventional "error" field.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}
