package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/namedlog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	<time> <logger>.<func>[PID: <pid> | lineno: <line>] <LEVEL>: <message> key=value...
//
// The function and line number are only present with IncludeCaller, and the
// timestamp is dropped with OmitTimestamp.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// NewSyslogFormatter creates a text formatter for syslog sinks, which carry
// their own timestamp.
func NewSyslogFormatter(includeCaller bool) *TextFormatter {
	return NewTextFormatter(Config{IncludeCaller: includeCaller, OmitTimestamp: true})
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if !f.OmitTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	buf.WriteString(loggerName(entry))
	withCaller := f.IncludeCaller && entry.Caller.Defined
	if withCaller {
		if fn := entry.Caller.ShortFunction(); fn != "" {
			buf.WriteByte('.')
			buf.WriteString(fn)
		}
	}

	buf.WriteString("[PID: ")
	buf.WriteString(pid)
	if withCaller {
		buf.WriteString(" | lineno: ")
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
	}
	buf.WriteString("] ")

	buf.WriteString(entry.Level.String())
	buf.WriteString(": ")
	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
