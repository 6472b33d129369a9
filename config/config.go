package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/levels"
	"github.com/philipp01105/namedlog/logger"
	"github.com/philipp01105/namedlog/sinks"
)

// Environment variables that override file settings
const (
	EnvLevel  = "NAMEDLOG_LEVEL"
	EnvSyslog = "NAMEDLOG_SYSLOG"
)

// Format is a configuration file format
type Format int

const (
	// FormatAuto picks the format from the file extension, TOML otherwise
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Config is the file form of a sink setup plus level rules
type Config struct {
	Level  core.Level         `toml:"level" yaml:"level"`
	Syslog sinks.SyslogTarget `toml:"syslog" yaml:"syslog"`
	Format string             `toml:"format" yaml:"format"`
	Async  bool               `toml:"async" yaml:"async"`
	Caller bool               `toml:"caller" yaml:"caller"`
	Rules  []levels.Assignment `toml:"rules" yaml:"rules"`

	// Writer receives console output (default: os.Stdout)
	Writer io.Writer `toml:"-" yaml:"-"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{Level: core.DebugLevel, Format: sinks.FormatText}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads path, applies environment overrides and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data, detectFormat(path))
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// Parse decodes data, applies environment overrides and validates the
// result. Unknown keys are rejected.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(err, "decode yaml")
		}
	default:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return Config{}, errors.Wrap(err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.Errorf("unknown keys: %v", undecoded)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides the level and syslog target from the environment
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		lvl, err := core.ParseLevel(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvLevel)
		}
		c.Level = lvl
	}
	if v, ok := os.LookupEnv(EnvSyslog); ok {
		target, err := sinks.ParseSyslogTarget(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSyslog)
		}
		c.Syslog = target
	}
	return nil
}

// Validate checks levels and the output format
func (c *Config) Validate() error {
	if !c.Level.Valid() {
		return errors.Errorf("invalid level %d", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", sinks.FormatText, sinks.FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	for i, r := range c.Rules {
		if r.Pattern == "" {
			return errors.Errorf("rule %d: empty pattern", i)
		}
		if !r.Level.Valid() {
			return errors.Errorf("rule %d: invalid level %d", i, r.Level)
		}
	}
	return nil
}

// Sinks converts the configuration into a sinks.Config
func (c Config) Sinks() sinks.Config {
	return sinks.Config{
		Level:  c.Level,
		Syslog: c.Syslog,
		Writer: c.Writer,
		Format: c.Format,
		Async:  c.Async,
		Caller: c.Caller,
	}
}

// Apply configures the sinks of reg and then runs the rules in order,
// returning how many loggers each rule updated. Rules only see loggers
// that exist when Apply runs. An invalid pattern stops at that rule; the
// counts of earlier rules are returned with the error.
func Apply(reg *logger.Registry, cfg Config, opts ...levels.Option) ([]int, error) {
	if _, err := sinks.Configure(reg, cfg.Sinks()); err != nil {
		return nil, errors.Wrap(err, "configure sinks")
	}

	m := levels.For(reg, opts...)
	counts := make([]int, 0, len(cfg.Rules))
	for i, rule := range cfg.Rules {
		n, err := m.Apply(rule)
		if err != nil {
			return counts, errors.Wrapf(err, "rule %d (%s)", i, rule)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
