package levels

import (
	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/logger"
)

// LevelSetter is the part of a logger the manager needs
type LevelSetter interface {
	Level() core.Level
	SetLevel(level core.Level)
}

// Registry is the view of a logger registry the manager operates on.
// Names must return a snapshot; Lookup must not create loggers.
type Registry interface {
	Names() []string
	Lookup(name string) (LevelSetter, error)
	Root() LevelSetter
}

// loggerRegistry adapts *logger.Registry to Registry
type loggerRegistry struct {
	reg *logger.Registry
}

// FromLogger adapts a logger.Registry for use with NewManager
func FromLogger(reg *logger.Registry) Registry {
	return loggerRegistry{reg: reg}
}

func (r loggerRegistry) Names() []string {
	return r.reg.Names()
}

func (r loggerRegistry) Lookup(name string) (LevelSetter, error) {
	l, err := r.reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r loggerRegistry) Root() LevelSetter {
	return r.reg.Root()
}
