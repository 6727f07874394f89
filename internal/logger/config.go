package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config is the shared state every logger created from it reads at log time.
// Setters take effect for all of those loggers on their next call.
type Config struct {
	level      atomic.Int32
	timestamp  atomic.Bool
	stackTrace atomic.Bool

	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// Option customizes a Config at construction.
type Option func(*Config)

// WithLevel sets the initial level.
func WithLevel(level Level) Option {
	return func(c *Config) {
		c.SetLevel(level)
	}
}

// WithTimestamp enables or disables the leading timestamp.
func WithTimestamp(enabled bool) Option {
	return func(c *Config) {
		c.SetTimestamp(enabled)
	}
}

// WithStackTrace enables or disables full error stacks.
func WithStackTrace(enabled bool) Option {
	return func(c *Config) {
		c.SetStackTrace(enabled)
	}
}

// WithOutput redirects rendered lines.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.out = w
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.now = now
	}
}

// NewConfig builds a Config that logs everything, with timestamps and stacks, to stdout.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		out: os.Stdout,
		now: time.Now,
	}
	c.SetLevel(LevelDebug)
	c.SetTimestamp(true)
	c.SetStackTrace(true)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewConfigFromEnv applies the environment defaults before opts.
func NewConfigFromEnv(env Env, opts ...Option) *Config {
	defaults := []Option{
		WithLevel(DefaultLevel(env)),
		WithTimestamp(DefaultTimestamp(env)),
		WithStackTrace(DefaultStackTrace(env)),
	}

	return NewConfig(append(defaults, opts...)...)
}

// Level returns the current level.
func (c *Config) Level() Level {
	return Level(c.level.Load())
}

// SetLevel changes the level for every logger sharing c.
func (c *Config) SetLevel(level Level) {
	c.level.Store(int32(level))
}

// Timestamp reports whether timestamps are rendered.
func (c *Config) Timestamp() bool {
	return c.timestamp.Load()
}

// SetTimestamp toggles timestamps.
func (c *Config) SetTimestamp(enabled bool) {
	c.timestamp.Store(enabled)
}

// StackTrace reports whether full error stacks are rendered.
func (c *Config) StackTrace() bool {
	return c.stackTrace.Load()
}

// SetStackTrace toggles full error stacks.
func (c *Config) SetStackTrace(enabled bool) {
	c.stackTrace.Store(enabled)
}

// SetOutput swaps the writer rendered lines go to.
func (c *Config) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.out = w
}

// Enabled reports whether a call at level is emitted. ERROR always is.
func (c *Config) Enabled(level Level) bool {
	return level == LevelError || level <= c.Level()
}

// New returns a logger with its own name and a copy of ctx.
func (c *Config) New(name string, ctx Fields) *Logger {
	return &Logger{
		cfg:     c,
		name:    name,
		context: ctx.Clone(),
	}
}

func (c *Config) write(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(c.out, line+"\n")
}
