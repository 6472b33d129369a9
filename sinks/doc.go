// Package sinks wires a registry to its outputs in one call.
//
// Configure installs a console sink and, when a syslog target is given, a
// syslog sink beside it, then sets the root level. Only the first call on
// a registry has an effect:
//
//	ok, err := sinks.Configure(logger.Default(), sinks.Config{
//		Level:  core.InfoLevel,
//		Syslog: sinks.Local(),
//	})
//
// Console lines look like
//
//	2024-05-01T10:00:00Z app.db.Open[PID: 4242 | lineno: 17] INFO: connected
//
// and syslog messages carry the same text without the timestamp.
package sinks
