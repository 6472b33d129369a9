package logger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/formatter"
	"github.com/philipp01105/namedlog/handler"
	"github.com/philipp01105/namedlog/handler/consolehandler"
)

// ErrUnknownLogger is returned by Lookup for names nobody has requested yet
var ErrUnknownLogger = errors.New("unknown logger")

// handlerRef caches the recycling capability next to the handler so the
// log path needs a single atomic load.
type handlerRef struct {
	h       handler.Handler
	recycle bool
}

func newHandlerRef(h handler.Handler) *handlerRef {
	return &handlerRef{h: h, recycle: handler.CanRecycle(h)}
}

// lastResort receives WARN and above while no handler is configured
var lastResort = sync.OnceValue(func() *handlerRef {
	return newHandlerRef(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stderr,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
		MinLevel:  core.WarnLevel,
	}))
})

// Registry maps logger names to loggers. Loggers are created on first
// request and live as long as the registry; there is no way to remove one.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	root    *Logger

	handler       atomic.Pointer[handlerRef]
	includeCaller atomic.Bool
	callerSkip    int
	fields        []core.Field
}

// NewRegistry creates an empty registry whose root logger is at level.
// Prefer NewBuilder for anything beyond the defaults.
func NewRegistry(level core.Level) *Registry {
	return NewBuilder().WithLevel(level).Build()
}

// Root returns the root logger
func (r *Registry) Root() *Logger {
	return r.root
}

// Logger returns the logger called name, creating it with level NotSet if
// it does not exist yet. The empty name is the root logger.
func (r *Registry) Logger(name string) *Logger {
	if name == "" {
		return r.root
	}

	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.loggers[name]; ok {
		return l
	}
	l = newLogger(r, name, core.NotSet)
	r.loggers[name] = l
	return l
}

// Lookup returns an existing logger without creating it
func (r *Registry) Lookup(name string) (*Logger, error) {
	if name == "" {
		return r.root, nil
	}
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogger, name)
	}
	return l, nil
}

// Names returns a sorted snapshot of every logger name except the root.
// Loggers created after the call are not included.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of named loggers (root excluded)
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loggers)
}

// inheritedLevel walks the dotted ancestors of name and returns the first
// level that is set, falling back to the root logger's level.
func (r *Registry) inheritedLevel(name string) core.Level {
	if name == "" {
		return r.root.Level()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for {
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
		if l, ok := r.loggers[name]; ok {
			if lvl := l.Level(); lvl != core.NotSet {
				return lvl
			}
		}
	}
	return r.root.Level()
}

// SetHandler installs h as the destination of every logger in the registry
// and returns the previous handler (nil if none). The previous handler is
// not closed.
func (r *Registry) SetHandler(h handler.Handler) handler.Handler {
	var ref *handlerRef
	if h != nil {
		ref = newHandlerRef(h)
	}
	old := r.handler.Swap(ref)
	if old == nil {
		return nil
	}
	return old.h
}

// InstallHandler installs h only if no handler is configured yet and
// reports whether it did.
func (r *Registry) InstallHandler(h handler.Handler) bool {
	if h == nil {
		return false
	}
	return r.handler.CompareAndSwap(nil, newHandlerRef(h))
}

// Handler returns the configured handler, or nil
func (r *Registry) Handler() handler.Handler {
	if ref := r.handler.Load(); ref != nil {
		return ref.h
	}
	return nil
}

// Configured reports whether a handler has been installed
func (r *Registry) Configured() bool {
	return r.handler.Load() != nil
}

// SetCaller toggles caller information on every entry
func (r *Registry) SetCaller(enabled bool) {
	r.includeCaller.Store(enabled)
}

// CallerEnabled reports whether entries carry caller information
func (r *Registry) CallerEnabled() bool {
	return r.includeCaller.Load()
}

func (r *Registry) handlerRef() *handlerRef {
	if ref := r.handler.Load(); ref != nil {
		return ref
	}
	return lastResort()
}

func (r *Registry) flush() {
	if h := r.Handler(); h != nil {
		_ = h.Close()
	}
}

// Close closes and removes the configured handler. Loggers and their
// levels are kept; later entries go to the last-resort stderr sink until
// a new handler is installed.
func (r *Registry) Close() error {
	old := r.handler.Swap(nil)
	if old == nil {
		return nil
	}
	return old.h.Close()
}

// Builder provides a fluent API for building Registry instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new registry builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default root level
		callerSkip: 3,              // GetCaller, log, exported method
	}
}

// WithHandler sets the handler shared by all loggers
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the root logger's level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds fields to every entry emitted through the registry
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Registry
func (b *Builder) Build() *Registry {
	r := &Registry{
		loggers:    make(map[string]*Logger),
		callerSkip: b.callerSkip,
		fields:     b.fields,
	}
	r.root = newLogger(r, "", b.level)
	r.includeCaller.Store(b.includeCaller)
	if b.handler != nil {
		r.SetHandler(b.handler)
	}
	return r
}
