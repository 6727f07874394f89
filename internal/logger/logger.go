package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Logger writes named lines through a shared Config.
type Logger struct {
	cfg *Config

	mu      sync.RWMutex
	name    string
	context Fields
}

// record is one call on its way to the writer. The error never enters the
// metadata map, so it cannot collide with a user key.
type record struct {
	level   Level
	message string
	meta    Fields
	err     error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type namedError interface {
	ErrorName() string
}

// Error always logs. args is an optional metadata map and an optional error,
// or a single error standing in for both.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args)
}

// Warn logs when the level is WARN or more verbose.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args)
}

// Info logs when the level is INFO or more verbose.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args)
}

// Debug logs when the level is DEBUG.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args)
}

func (l *Logger) log(level Level, msg string, args []any) {
	if !l.cfg.Enabled(level) {
		return
	}

	meta, err := splitArgs(args)
	l.emit(record{level: level, message: msg, meta: meta, err: err})
}

func splitArgs(args []any) (Fields, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if err, ok := args[0].(error); ok {
		return nil, err
	}

	meta := toFields(args[0])

	if len(args) > 1 {
		if err, ok := args[1].(error); ok {
			return meta, err
		}
	}

	return meta, nil
}

func (l *Logger) emit(r record) {
	l.cfg.write(l.render(r))
}

func (l *Logger) render(r record) string {
	var b strings.Builder

	if l.cfg.Timestamp() {
		b.WriteString(l.cfg.now().UTC().Format(timestampLayout))
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "[%s] %s - ", l.Name(), r.level)

	merged := l.Context()
	for k, v := range r.meta {
		merged[k] = v
	}

	if len(merged) > 0 {
		b.WriteString(encodeContext(merged))
		b.WriteByte(' ')
	}

	b.WriteString(r.message)

	if r.err != nil {
		b.WriteString(" => ")
		b.WriteString(formatError(r.err, l.cfg.StackTrace()))
	}

	return b.String()
}

func encodeContext(ctx Fields) string {
	for k, v := range ctx {
		if err, ok := v.(error); ok {
			ctx[k] = err.Error()
		}
	}

	data, err := json.Marshal(ctx)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(ctx))
	}

	return string(data)
}

func formatError(err error, withStack bool) string {
	head := errorName(err) + ": " + err.Error()
	if !withStack {
		return head
	}

	var tracer stackTracer
	if errors.As(err, &tracer) {
		return head + fmt.Sprintf("%+v", tracer.StackTrace())
	}

	return head
}

// errorName prefers an ErrorName anywhere in the chain, else the type of the
// innermost cause.
func errorName(err error) string {
	var named namedError
	if errors.As(err, &named) && named.ErrorName() != "" {
		return named.ErrorName()
	}

	cause := err
	for next := errors.Unwrap(cause); next != nil; next = errors.Unwrap(cause) {
		cause = next
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", cause), "*")
}

// Name returns the logger name.
func (l *Logger) Name() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.name
}

// SetName renames the logger.
func (l *Logger) SetName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.name = name
}

// Context returns a copy of the logger context.
func (l *Logger) Context() Fields {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.context.Clone()
}

// SetContext replaces the context with a copy of ctx.
func (l *Logger) SetContext(ctx Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.context = ctx.Clone()
}

// AssignContext merges ctx over the current context.
func (l *Logger) AssignContext(ctx Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, v := range ctx {
		l.context[k] = v
	}
}

// SetContextProp sets a single context key.
func (l *Logger) SetContextProp(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.context[key] = value
}

// Config returns the shared configuration the logger reads from.
func (l *Logger) Config() *Config {
	return l.cfg
}
