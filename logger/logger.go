package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/philipp01105/namedlog/core"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// levelCell holds a logger's own level. It is shared between a registry
// entry and every child created from it with With.
type levelCell struct {
	v atomic.Int32
}

func (c *levelCell) load() core.Level   { return core.Level(c.v.Load()) }
func (c *levelCell) store(l core.Level) { c.v.Store(int32(l)) }

// Logger is a named logger owned by a Registry. Its level is mutable and
// safe to change while other goroutines log through it.
type Logger struct {
	name   string
	reg    *Registry
	level  *levelCell
	fields []core.Field
}

func newLogger(reg *Registry, name string, level core.Level) *Logger {
	l := &Logger{name: name, reg: reg, level: &levelCell{}}
	l.level.store(level)
	return l
}

// Name returns the dotted logger name; the root logger's name is empty
func (l *Logger) Name() string {
	return l.name
}

// Registry returns the registry this logger belongs to
func (l *Logger) Registry() *Registry {
	return l.reg
}

// Level returns the logger's own level, which may be NotSet
func (l *Logger) Level() core.Level {
	return l.level.load()
}

// SetLevel changes the logger's level. NotSet makes it inherit from its
// nearest configured ancestor.
func (l *Logger) SetLevel(level core.Level) {
	l.level.store(level)
}

// EffectiveLevel resolves NotSet through the logger's dotted ancestors,
// ending at the root logger.
func (l *Logger) EffectiveLevel() core.Level {
	if lvl := l.level.load(); lvl != core.NotSet {
		return lvl
	}
	return l.reg.inheritedLevel(l.name)
}

// Enabled reports whether a message at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.EffectiveLevel()
}

// Named returns the child logger "<name>.<suffix>" from the same registry
func (l *Logger) Named(suffix string) *Logger {
	if l.name == "" {
		return l.reg.Logger(suffix)
	}
	return l.reg.Logger(l.name + "." + suffix)
}

// With creates a child Logger with additional fields. The child keeps the
// parent's name and shares its level, so level changes apply to both.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		name:   l.name,
		reg:    l.reg,
		level:  l.level,
		fields: newFields,
	}
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields)
}

// log builds the entry and hands it to the registry's handler. It must be
// called directly from the exported logging method so that the caller skip
// stays constant.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	ref := l.reg.handlerRef()
	if ref == nil {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg

	if len(l.reg.fields) > 0 {
		entry.Fields = append(entry.Fields, l.reg.fields...)
	}
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if l.reg.includeCaller.Load() {
		entry.Caller = core.GetCaller(l.reg.callerSkip)
	}

	// Handler errors have no one to report to at this point
	_ = ref.h.Handle(entry)

	if ref.recycle {
		core.PutEntry(entry)
	}
}

// LogEntry sends an entry built elsewhere through the logger. The logger name
// and the registry and logger fields are filled in; Time, Level, Message,
// Caller and call fields are taken as given. The level gate is not applied,
// so callers check Enabled first. It is meant for bridges from other logging
// APIs. The entry must come from core.GetEntry and is owned by the logger
// afterwards.
func (l *Logger) LogEntry(entry *core.Entry) {
	ref := l.reg.handlerRef()

	entry.Logger = l.name
	if n := len(l.reg.fields) + len(l.fields); n > 0 {
		fields := make([]core.Field, 0, n+len(entry.Fields))
		fields = append(fields, l.reg.fields...)
		fields = append(fields, l.fields...)
		entry.Fields = append(fields, entry.Fields...)
	}

	_ = ref.h.Handle(entry)

	if ref.recycle {
		core.PutEntry(entry)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message and exits the program with os.Exit(1).
// The message is emitted regardless of the logger's level.
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	l.reg.flush()
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	l.reg.flush()
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	panic(msg)
}
