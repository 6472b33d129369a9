package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/logger"
)

// SlogHandler implements slog.Handler on top of a named Logger. Enabled
// reads the logger's current effective level on every call, so level
// changes made through the registry apply to slog callers immediately.
type SlogHandler struct {
	logger *logger.Logger
	attrs  []core.Field
	group  string
}

// New returns a slog.Handler that logs through l
func New(l *logger.Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// NewLogger returns a *slog.Logger backed by the named logger in reg
func NewLogger(reg *logger.Registry, name string) *slog.Logger {
	return slog.New(New(reg.Logger(name)))
}

// Enabled reports whether the named logger currently accepts level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(LevelFromSlog(level))
}

// Handle converts the record into an entry and logs it
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	if !record.Time.IsZero() {
		entry.Time = record.Time
	}
	entry.Level = LevelFromSlog(record.Level)
	entry.Message = record.Message

	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendAttr(entry.Fields, s.group, a)
		return true
	})

	if s.logger.Registry().CallerEnabled() {
		entry.Caller = core.CallerFromPC(record.PC)
	}

	s.logger.LogEntry(entry)
	return nil
}

// WithAttrs returns a handler that adds attrs to every record
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: newAttrs, group: s.group}
}

// WithGroup returns a handler that prefixes later keys with name
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: group}
}

// LevelFromSlog maps a slog level onto the nearest level at or below it
func LevelFromSlog(level slog.Level) core.Level {
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

// appendAttr converts a into fields, flattening groups into dotted keys.
// Empty attrs are dropped, as slog handlers are expected to do.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		var v int64
		if a.Value.Bool() {
			v = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: v})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
