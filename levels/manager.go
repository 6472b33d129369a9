package levels

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/logger"
)

// ErrInvalidLevel is returned for levels outside the defined range
var ErrInvalidLevel = errors.New("invalid level")

var (
	errNilLogger = errors.New("registry returned no logger")
	errSetLevel  = errors.New("set level failed")
)

// Assignment is a single bulk level change: set Level on every logger whose
// name matches Pattern, or on every logger that does not when Inverse is set.
type Assignment struct {
	Pattern string     `toml:"pattern" yaml:"pattern"`
	Level   core.Level `toml:"level" yaml:"level"`
	Inverse bool       `toml:"inverse" yaml:"inverse"`
}

func (a Assignment) String() string {
	op := "="
	if a.Inverse {
		op = "!="
	}
	return fmt.Sprintf("%s%s%s", a.Pattern, op, a.Level)
}

// Manager changes logger levels in bulk by matching logger names against
// regular expressions. A name matches when the pattern matches at its
// start; the pattern does not have to consume the whole name.
//
// Operations work on the snapshot returned by Registry.Names. Loggers
// created while an operation runs are not visited. The manager adds no
// locking of its own.
type Manager struct {
	reg      Registry
	log      *logger.Logger
	onAccess func(*LoggerAccessError)
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger the manager reports through
func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithAccessErrorHandler registers fn to receive every LoggerAccessError
// in addition to the warning logged for it.
func WithAccessErrorHandler(fn func(*LoggerAccessError)) Option {
	return func(m *Manager) { m.onAccess = fn }
}

// NewManager creates a manager for reg. Diagnostics go to the
// "namedlog.levels" logger of the default registry unless WithLogger is given.
func NewManager(reg Registry, opts ...Option) *Manager {
	m := &Manager{reg: reg}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger.GetLogger("namedlog.levels")
	}
	return m
}

// For creates a manager for a logger.Registry
func For(reg *logger.Registry, opts ...Option) *Manager {
	return NewManager(FromLogger(reg), opts...)
}

// SetRootLevel sets the level of the root logger
func (m *Manager) SetRootLevel(level core.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	m.log.Debug("setting level of root logger", logger.LevelField("level", level))
	m.reg.Root().SetLevel(level)
	return nil
}

// SetLevel sets level on every logger whose name matches pattern and
// returns how many loggers were updated.
func (m *Manager) SetLevel(level core.Level, pattern string) (int, error) {
	return m.apply(level, pattern, false)
}

// SetInverseLevel sets level on every logger whose name does not match
// pattern and returns how many loggers were updated.
func (m *Manager) SetInverseLevel(level core.Level, pattern string) (int, error) {
	return m.apply(level, pattern, true)
}

// Apply runs a single Assignment
func (m *Manager) Apply(a Assignment) (int, error) {
	return m.apply(a.Level, a.Pattern, a.Inverse)
}

// LoggerNamesMatching returns the names in the current snapshot that match
// pattern, in snapshot order.
func (m *Manager) LoggerNamesMatching(pattern string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range m.reg.Names() {
		if matchesPrefix(re, name) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (m *Manager) apply(level core.Level, pattern string, inverse bool) (int, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	re, err := compile(pattern)
	if err != nil {
		return 0, err
	}

	m.log.Debug("entering bulk level update",
		logger.String("pattern", pattern),
		logger.LevelField("level", level),
		logger.Bool("inverse", inverse),
	)

	updated := 0
	for _, name := range m.reg.Names() {
		if matchesPrefix(re, name) == inverse {
			m.log.Debug("logger left unchanged", logger.String("logger", name))
			continue
		}

		l, err := m.reg.Lookup(name)
		if err == nil && l == nil {
			err = errNilLogger
		}
		if err != nil {
			m.report(&LoggerAccessError{Name: name, Err: err})
			continue
		}

		m.log.Debug("setting level of logger",
			logger.String("logger", name),
			logger.LevelField("level", level),
		)
		if err := setLevel(l, level); err != nil {
			m.report(&LoggerAccessError{Name: name, Err: err})
			continue
		}
		updated++
	}

	m.log.Debug("leaving bulk level update", logger.Int("updated", updated))
	return updated, nil
}

func (m *Manager) report(err *LoggerAccessError) {
	m.log.Warn("skipping logger, continuing after error", logger.String("logger", err.Name), logger.Err(err.Err))
	if m.onAccess != nil {
		m.onAccess(err)
	}
}

// setLevel calls l.SetLevel and turns a panic, such as one from a typed
// nil logger, into an error so the rest of the batch still runs.
func setLevel(l LevelSetter, level core.Level) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errSetLevel, r)
		}
	}()
	l.SetLevel(level)
	return nil
}

// compile validates pattern and returns it anchored at the start of the
// name. The anchored form matches exactly the names the pattern matches
// starting at index 0, without scanning the rest of the name. It is built
// from the parsed tree so constructs like an unterminated \Q cannot swallow
// the closing group.
func compile(pattern string) (*regexp.Regexp, error) {
	parsed, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	re, err := regexp.Compile(`^(?:` + parsed.String() + `)`)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// matchesPrefix reports whether the anchored re matches name
func matchesPrefix(re *regexp.Regexp, name string) bool {
	return re.MatchString(name)
}
