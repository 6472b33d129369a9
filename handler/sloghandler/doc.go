// Package sloghandler lets code written against log/slog log through a
// named logger:
//
//	log := sloghandler.NewLogger(logger.Default(), "app.http")
//	log.Info("request", "path", "/health", "status", 200)
//
// Records are gated by the named logger's effective level at the moment
// of the call. Groups are flattened into dotted keys.
package sloghandler
