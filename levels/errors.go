package levels

import "fmt"

// InvalidPatternError is returned when a pattern does not compile. It is
// returned before any logger is touched.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid logger name pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// LoggerAccessError describes a logger that could not be resolved during a
// bulk update. It is reported through the diagnostics channel and the
// logger is skipped; bulk operations never return it.
type LoggerAccessError struct {
	Name string
	Err  error
}

func (e *LoggerAccessError) Error() string {
	return fmt.Sprintf("access logger %q: %v", e.Name, e.Err)
}

func (e *LoggerAccessError) Unwrap() error {
	return e.Err
}
