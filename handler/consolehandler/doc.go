// Package consolehandler provides console output handlers that write
// formatted log entries to any io.Writer (default: os.Stdout).
//
// Handlers are split into sync and async variants:
//
//   - SyncConsoleHandler formats and writes on the caller's goroutine.
//   - AsyncConsoleHandler queues entries for a dedicated goroutine and
//     applies the per-level OverflowPolicy when the queue is full.
//
// NewConsoleHandler picks the variant from ConsoleConfig.Async. A
// handler-level MinLevel lets one sink be quieter than the loggers
// feeding it.
package consolehandler
