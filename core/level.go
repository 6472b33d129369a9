package core

import (
	"fmt"
	"strconv"
	"strings"
)

// numericLevels maps the classic numeric severity scale onto Level.
var numericLevels = map[int]Level{
	0:  NotSet,
	5:  TraceLevel,
	10: DebugLevel,
	20: InfoLevel,
	30: WarnLevel,
	40: ErrorLevel,
	50: FatalLevel,
}

// ParseLevel converts a level name or a numeric severity to a Level.
// Names are case-insensitive; WARNING and CRITICAL are accepted as aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NOTSET":
		return NotSet, nil
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL", "CRITICAL":
		return FatalLevel, nil
	case "PANIC":
		return PanicLevel, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if l, ok := numericLevels[n]; ok {
			return l, nil
		}
	}
	return NotSet, fmt.Errorf("unknown level %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", l)
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
