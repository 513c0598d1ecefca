package domain

import (
	"context"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging capability handed to every component.
// Progress reporting goes through this interface rather than direct prints
// so the aggregation logic stays testable.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	WithFields(fields ...Field) Logger
}

// LoggerFactory creates component-scoped loggers.
type LoggerFactory interface {
	CreateLogger(component string) Logger
}

func NewField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
