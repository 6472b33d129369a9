// Package logger is the public API of namedlog. Most users only need to
// import this package and, once at startup, package sinks.
//
// Loggers are identified by dotted names and live in a Registry. Asking
// for a name that does not exist yet creates the logger; asking again
// returns the same one:
//
//	log := logger.GetLogger("app.db")
//	log.Info("connected", logger.String("dsn", dsn))
//
// Every logger has its own level, which may be changed at any time by any
// goroutine. A logger left at NotSet inherits the level of its nearest
// dotted ancestor ("app.db" inherits from "app"), and finally from the
// root logger, whose name is empty. Package levels changes levels in
// bulk by matching logger names against a regular expression.
//
// All loggers of a registry share one handler. A registry without a
// handler sends WARN and above to stderr so that problems are not lost
// before sinks are configured.
//
// The package keeps a default registry; GetLogger, Root, ForValue and the
// package-level Info, Errorf, etc. use it. Separate registries are built
// with the Builder:
//
//	reg := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// With returns a child that carries extra fields but keeps the parent's
// name and shares its level:
//
//	reqLog := log.With(logger.String("request_id", id))
package logger
