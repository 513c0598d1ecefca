package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ca-srg/azusage/domain"
)

// ConsoleLogger writes log lines to stderr so they never interleave with
// the report printed on stdout.
type ConsoleLogger struct {
	out       io.Writer
	component string
	fields    []domain.Field
	mu        sync.Mutex
}

func NewConsoleLogger(component string) *ConsoleLogger {
	return &ConsoleLogger{
		out:       os.Stderr,
		component: component,
		fields:    []domain.Field{},
	}
}

func (c *ConsoleLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	c.print(domain.LogLevelDebug, msg, fields...)
}

func (c *ConsoleLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	c.print(domain.LogLevelInfo, msg, fields...)
}

func (c *ConsoleLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	c.print(domain.LogLevelWarn, msg, fields...)
}

func (c *ConsoleLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	c.print(domain.LogLevelError, msg, fields...)
}

func (c *ConsoleLogger) WithFields(fields ...domain.Field) domain.Logger {
	newFields := make([]domain.Field, len(c.fields)+len(fields))
	copy(newFields, c.fields)
	copy(newFields[len(c.fields):], fields)

	return &ConsoleLogger{
		out:       c.out,
		component: c.component,
		fields:    newFields,
	}
}

func (c *ConsoleLogger) print(level domain.LogLevel, msg string, fields ...domain.Field) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	output := fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, levelToString(level), c.component, msg)

	allFields := append(c.fields, fields...)
	if len(allFields) > 0 {
		output += " {"
		for i, field := range allFields {
			if i > 0 {
				output += ", "
			}
			output += fmt.Sprintf("%s=%v", field.Key, field.Value)
		}
		output += "}"
	}

	_, _ = fmt.Fprintln(c.out, output)
}
