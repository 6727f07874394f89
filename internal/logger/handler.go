package logger

import (
	"context"
	"log/slog"
)

// Handler routes log/slog records through a Logger, so slog.Error and friends
// share its level gate and line format. The first error-valued attribute
// becomes the error suffix.
type Handler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// NewHandler returns a slog.Handler writing through l.
func NewHandler(l *Logger) *Handler {
	return &Handler{logger: l}
}

// Slog returns an *slog.Logger backed by l.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(NewHandler(l))
}

// FromSlogLevel maps slog levels onto the four logger levels.
func FromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.cfg.Enabled(FromSlogLevel(level))
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	meta := Fields{}

	var err error

	add := func(key string, v slog.Value) {
		if e, ok := v.Resolve().Any().(error); ok && err == nil {
			err = e
			return
		}

		if key != "" {
			meta[key] = attrValue(v)
		}
	}

	for _, a := range h.attrs {
		add(a.Key, a.Value)
	}

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" {
			add(h.key(a.Key), a.Value)
		}

		return true
	})

	if len(meta) == 0 {
		meta = nil
	}

	h.logger.emit(record{
		level:   FromSlogLevel(r.Level),
		message: r.Message,
		meta:    meta,
		err:     err,
	})

	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)

	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}

	return &next
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.group = h.key(name)

	return &next
}

func (h *Handler) key(k string) string {
	if h.group == "" {
		return k
	}

	return h.group + "." + k
}

func attrValue(v slog.Value) any {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindGroup:
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return v.Any()
	}

	group := Fields{}
	for _, a := range v.Group() {
		group[a.Key] = attrValue(a.Value)
	}

	return group
}
