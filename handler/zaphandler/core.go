package zaphandler

import (
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/logger"
)

// Core is a zapcore.Core that logs through a named Logger. Names added
// with zap's Logger.Named become dotted children of that logger, and each
// check consults the child's current effective level.
type Core struct {
	logger *logger.Logger
	fields []core.Field
}

// NewCore returns a core writing through l
func NewCore(l *logger.Logger) *Core {
	return &Core{logger: l}
}

// NewLogger returns a *zap.Logger backed by the named logger in reg
func NewLogger(reg *logger.Registry, name string, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(reg.Logger(name)), opts...)
}

// Enabled always reports true. zap gates on Enabled before the entry's
// logger name is known, and a child added with Named may be more verbose
// than the base logger; Check applies the real level.
func (c *Core) Enabled(zapcore.Level) bool {
	return true
}

// With returns a core that adds fields to every entry
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	newFields := make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	return &Core{logger: c.logger, fields: encodeFields(newFields, fields)}
}

// Check adds the core to ce when the target logger accepts the entry
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.target(ent.LoggerName).Enabled(LevelFromZap(ent.Level)) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write logs the entry. Fatal and panic handling stay with zap.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	l := c.target(ent.LoggerName)

	entry := core.GetEntry()
	entry.Time = ent.Time
	entry.Level = LevelFromZap(ent.Level)
	entry.Message = ent.Message
	entry.Fields = append(entry.Fields, c.fields...)
	entry.Fields = encodeFields(entry.Fields, fields)
	if ent.Stack != "" {
		entry.Fields = append(entry.Fields, core.Field{Key: "stacktrace", Type: core.StringType, Str: ent.Stack})
	}
	if ent.Caller.Defined && l.Registry().CallerEnabled() {
		entry.Caller = core.CallerFromPC(ent.Caller.PC)
		if !entry.Caller.Defined {
			entry.Caller = core.CallerInfo{
				File:     ent.Caller.File,
				Line:     ent.Caller.Line,
				Function: ent.Caller.Function,
				Defined:  true,
			}
		}
	}

	l.LogEntry(entry)
	return nil
}

// Sync is a no-op; handlers flush on Close
func (c *Core) Sync() error {
	return nil
}

func (c *Core) target(zapName string) *logger.Logger {
	if zapName == "" {
		return c.logger
	}
	return c.logger.Named(zapName)
}

// LevelFromZap maps a zap level onto a level. DPanic is treated as ERROR.
func LevelFromZap(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.FatalLevel:
		return core.FatalLevel
	case lvl >= zapcore.PanicLevel:
		return core.PanicLevel
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.WarnLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	case lvl >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// encodeFields renders zap fields through a map encoder and appends them in
// key order.
func encodeFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	if len(fields) == 0 {
		return dst
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst = append(dst, toField(k, enc.Fields[k]))
	}
	return dst
}

func toField(key string, v interface{}) core.Field {
	switch v := v.(type) {
	case string:
		return core.Field{Key: key, Type: core.StringType, Str: v}
	case bool:
		var i int64
		if v {
			i = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: i}
	case int:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(v)}
	case int64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: v}
	case int32:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(v)}
	case float64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: v}
	case time.Duration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(v)}
	case time.Time:
		return core.Field{Key: key, Type: core.TimeType, Int64: v.UnixNano()}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: v}
	}
}
