// Package formatter defines how log entries are serialized into bytes.
//
// TextFormatter renders the classic single-line layout
//
//	2026-01-15T12:00:00Z app.db.Query[PID: 4242 | lineno: 87] DEBUG: query done rows=3
//
// and, with OmitTimestamp, the same line without the timestamp for syslog
// sinks (see NewSyslogFormatter). JSONFormatter renders one JSON object
// per line with time, level, logger, pid and message keys followed by
// the entry's fields.
//
// Both formatters implement Formatter, WriterFormatter and BufferFormatter
// and use a pooled bytes.Buffer internally. Buffers larger than 64 KiB
// are not returned to the pool.
package formatter
