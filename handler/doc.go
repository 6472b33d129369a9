// Package handler provides the Handler interface and the pieces shared by
// the built-in sinks.
//
// Handlers receive a fully populated core.Entry (level, logger name,
// message, fields, caller) and deliver it somewhere. Subpackages provide
// the concrete sinks:
//
//   - consolehandler writes formatted entries to any io.Writer (default: stdout),
//     synchronously or through a bounded queue.
//   - sysloghandler delivers entries to a local or remote syslog daemon.
//   - sloghandler and zaphandler go the other way: they let log/slog and
//     zap front ends emit through a named logger, honouring its level.
//
// MultiHandler fans an entry out to several children and combines their
// errors with multierr.
//
// Async handlers apply a per-level OverflowPolicy when their queue is full:
// DropNewest (default below ERROR), DropOldest, or Block with a timeout
// (default from ERROR upward). Dropped, blocked and processed counts are
// tracked in Stats.
package handler
