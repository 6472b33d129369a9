package logger

import (
	"github.com/philipp01105/namedlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NotSet     = core.NotSet
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ParseLevel converts a level name or numeric severity to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// MustParseLevel is like ParseLevel but falls back to InfoLevel
func MustParseLevel(s string) Level {
	l, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}
