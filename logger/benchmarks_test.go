package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/namedlog/formatter"
	"github.com/philipp01105/namedlog/handler/consolehandler"
)

func newDiscardRegistry(level Level) *Registry {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	return NewBuilder().WithHandler(h).WithLevel(level).Build()
}

func BenchmarkInfoNoFields(b *testing.B) {
	log := newDiscardRegistry(InfoLevel).Logger("bench")
	log.SetLevel(InfoLevel)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("test message")
	}
}

func BenchmarkInfoWith2Fields(b *testing.B) {
	log := newDiscardRegistry(InfoLevel).Logger("bench")
	log.SetLevel(InfoLevel)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("test message", String("key1", "value1"), String("key2", "value2"))
	}
}

// BenchmarkFilteredDebug measures the level gate on a logger with its own level.
func BenchmarkFilteredDebug(b *testing.B) {
	log := newDiscardRegistry(InfoLevel).Logger("bench")
	log.SetLevel(InfoLevel)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Debug("debug message", String("key", "value"))
	}
}

// BenchmarkFilteredDebugInherited measures the level gate when the level is
// resolved through three unset ancestors.
func BenchmarkFilteredDebugInherited(b *testing.B) {
	reg := newDiscardRegistry(InfoLevel)
	reg.Logger("a")
	reg.Logger("a.b")
	log := reg.Logger("a.b.c.d")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Debug("debug message")
	}
}

func BenchmarkRegistryLogger(b *testing.B) {
	reg := newDiscardRegistry(InfoLevel)
	reg.Logger("app.db")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = reg.Logger("app.db")
	}
}
