package sloghandler

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/formatter"
	"github.com/philipp01105/namedlog/handler/consolehandler"
	"github.com/philipp01105/namedlog/logger"
)

func newTestRegistry(level core.Level) (*logger.Registry, *bytes.Buffer) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{OmitTimestamp: true}),
	})
	return logger.NewBuilder().WithHandler(h).WithLevel(level).Build(), &buf
}

func TestSlogHandler_FollowsLoggerLevel(t *testing.T) {
	reg, buf := newTestRegistry(core.InfoLevel)
	log := NewLogger(reg, "app.http")

	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at INFO, got %q", buf.String())
	}

	reg.Logger("app.http").SetLevel(core.DebugLevel)
	log.Debug("shown", "path", "/health")

	out := buf.String()
	if !strings.Contains(out, "app.http[PID: ") || !strings.Contains(out, "DEBUG: shown path=/health") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSlogHandler_InheritsFromAncestor(t *testing.T) {
	reg, buf := newTestRegistry(core.ErrorLevel)
	log := NewLogger(reg, "app.db.pool")

	log.Warn("not yet")
	reg.Logger("app").SetLevel(core.WarnLevel)
	log.Warn("now")

	if strings.Contains(buf.String(), "not yet") {
		t.Errorf("warning leaked before level change: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN: now") {
		t.Errorf("expected warning after level change, got %q", buf.String())
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	reg, buf := newTestRegistry(core.InfoLevel)
	log := NewLogger(reg, "svc").With("region", "eu").WithGroup("req")

	log.Info("done",
		"status", 200,
		"ok", true,
		slog.Group("timing", "took", 2*time.Second),
		"err", errors.New("none"),
	)

	out := buf.String()
	for _, want := range []string{
		"region=eu",
		"req.status=200",
		"req.ok=true",
		"req.timing.took=2s",
		"req.err=none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestSlogHandler_EmptyAttrDropped(t *testing.T) {
	reg, buf := newTestRegistry(core.InfoLevel)
	log := NewLogger(reg, "svc")

	log.Info("msg", slog.Attr{}, "k", "v")

	if got := buf.String(); !strings.HasSuffix(got, "INFO: msg k=v\n") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestSlogHandler_Caller(t *testing.T) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{OmitTimestamp: true, IncludeCaller: true}),
	})
	reg := logger.NewBuilder().WithHandler(h).WithCaller(true).Build()
	NewLogger(reg, "svc").Info("where")

	if !strings.Contains(buf.String(), "svc.TestSlogHandler_Caller[PID: ") {
		t.Errorf("expected caller function in %q", buf.String())
	}
}

func TestLevelFromSlog(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelInfo + 2, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 8, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := LevelFromSlog(tt.in); got != tt.want {
			t.Errorf("LevelFromSlog(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
