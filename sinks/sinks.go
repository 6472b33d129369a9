package sinks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/formatter"
	"github.com/philipp01105/namedlog/handler"
	"github.com/philipp01105/namedlog/handler/consolehandler"
	"github.com/philipp01105/namedlog/handler/sysloghandler"
	"github.com/philipp01105/namedlog/logger"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config describes the sinks of a registry
type Config struct {
	// Level is the root logger level (default: DEBUG)
	Level core.Level
	// Syslog adds a syslog sink when enabled
	Syslog SyslogTarget
	// Writer receives console output (default: os.Stdout)
	Writer io.Writer
	// Format is FormatText (default) or FormatJSON
	Format string
	// Async makes the console sink asynchronous
	Async bool
	// Caller adds function and line number to every record
	Caller bool
	// SyslogTag overrides the syslog program name
	SyslogTag string
}

func applyDefaults(cfg *Config) error {
	if cfg.Level == core.NotSet {
		cfg.Level = core.DebugLevel
	}
	if !cfg.Level.Valid() {
		return fmt.Errorf("invalid level %d", cfg.Level)
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}

// Configure installs console and, if enabled, syslog sinks on reg and sets
// the root level. It does nothing and returns false when reg already has a
// handler. On error nothing is installed.
func Configure(reg *logger.Registry, cfg Config) (bool, error) {
	log := reg.Logger("namedlog.sinks")
	if reg.Configured() {
		log.Debug("ignoring second sink configuration")
		return false, nil
	}
	if err := applyDefaults(&cfg); err != nil {
		return false, err
	}

	h, err := build(cfg)
	if err != nil {
		return false, err
	}
	if !install(reg, h, cfg) {
		_ = h.Close()
		log.Debug("ignoring second sink configuration")
		return false, nil
	}

	log.Info("sinks initialised",
		logger.LevelField("level", cfg.Level),
		logger.Stringer("syslog", cfg.Syslog),
	)
	return true, nil
}

// install sets the root level and caller flag, then publishes h, so the
// first entry through h already sees the new settings. If another handler
// got installed first the previous settings are put back.
func install(reg *logger.Registry, h handler.Handler, cfg Config) bool {
	prevLevel := reg.Root().Level()
	prevCaller := reg.CallerEnabled()

	reg.SetCaller(cfg.Caller)
	reg.Root().SetLevel(cfg.Level)
	if reg.InstallHandler(h) {
		return true
	}

	reg.SetCaller(prevCaller)
	reg.Root().SetLevel(prevLevel)
	return false
}

// ConfigureSinks configures the default registry with a level threshold
// and a syslog target in ParseSyslogTarget form.
func ConfigureSinks(level core.Level, syslog string) (bool, error) {
	target, err := ParseSyslogTarget(syslog)
	if err != nil {
		return false, err
	}
	return Configure(logger.Default(), Config{Level: level, Syslog: target})
}

func build(cfg Config) (handler.Handler, error) {
	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    cfg.Writer,
		Formatter: newFormatter(cfg.Format, cfg.Caller, false),
		Async:     cfg.Async,
	})
	if !cfg.Syslog.Enabled {
		return console, nil
	}

	syslog, err := sysloghandler.NewSyslogHandler(sysloghandler.SyslogConfig{
		Network:   cfg.Syslog.Network,
		Addr:      cfg.Syslog.Addr,
		Tag:       cfg.SyslogTag,
		Formatter: newFormatter(cfg.Format, cfg.Caller, true),
	})
	if err != nil {
		_ = console.Close()
		return nil, err
	}
	return handler.NewMultiHandler(syslog, console), nil
}

func newFormatter(format string, caller, syslog bool) formatter.Formatter {
	fc := formatter.Config{IncludeCaller: caller, OmitTimestamp: syslog}
	if format == FormatJSON {
		return formatter.NewJSONFormatter(fc)
	}
	return formatter.NewTextFormatter(fc)
}
