// Package core defines the shared types used across namedlog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event emitted by a named logger, and the Field
// type for allocation-light structured key-value pairs.
//
// Levels are ordered TRACE < DEBUG < INFO < WARN < ERROR < FATAL < PANIC.
// The zero value NotSet is not a severity: a logger whose level is NotSet
// defers to its nearest dotted ancestor in the registry, and finally to the
// root logger.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
package core
