// Package slogadapter lets log/slog write through a bridgelog Logger.
//
// Records are gated on the Logger's threshold, attributes are rendered
// into the message as key=value pairs (groups become dotted keys) and an
// error-valued attribute is reported to the sink on its own:
//
//	slog.New(slogadapter.New(logger.Get("org.example"))).
//	    Warn("upload failed", "file", name, "err", err)
package slogadapter

import (
	"context"
	"log/slog"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logger"
)

// Handler is a slog.Handler that renders records into a Logger
type Handler struct {
	logger *logger.Logger
	attrs  []core.Field
	group  string
}

var _ slog.Handler = (*Handler)(nil)

// New creates a Handler writing to l
func New(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled reports whether the Logger's threshold lets level through
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsEnabled(LevelToCore(level))
}

// Handle renders the record's attributes into its message and forwards
// it. The first error-valued attribute is reported after the message
// instead of being rendered.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	level := LevelToCore(record.Level)
	if !h.logger.IsEnabled(level) {
		return nil
	}

	fields := make([]core.Field, len(h.attrs), len(h.attrs)+record.NumAttrs())
	copy(fields, h.attrs)

	var err error
	record.Attrs(func(a slog.Attr) bool {
		if e, ok := a.Value.Resolve().Any().(error); ok && err == nil {
			err = e
			return true
		}
		fields = appendAttr(fields, h.group, a)
		return true
	})

	h.logger.LogErr(level, core.AppendFields(record.Message, fields), err)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{
		logger: h.logger,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{
		logger: h.logger,
		attrs:  h.attrs,
		group:  joinKey(h.group, name),
	}
}

// LevelToCore converts a slog.Level to a core.Level. Anything below
// slog.LevelDebug is trace.
func LevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr converts a to fields, flattening groups into dotted keys.
// Empty attributes are dropped.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}

	key := joinKey(group, a.Key)
	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Uint64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(fields, core.FieldOf(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.FieldOf(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, core.FieldOf(key, a.Value.Duration()))
	default:
		return append(fields, core.FieldOf(key, a.Value.Any()))
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
