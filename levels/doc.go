// Package levels changes the levels of many loggers at once.
//
// A Manager selects loggers by matching their names against a regular
// expression (Go RE2 syntax). The match is anchored at the start of the
// name but may stop early, so "^app\." and "app\." both select "app.db"
// and "app.http" while leaving "lib.net" alone:
//
//	m := levels.For(logger.Default())
//	n, err := m.SetLevel(logger.DebugLevel, `app\.`)
//
// SetInverseLevel selects the complement. The two calls with the same
// pattern split the registry into two disjoint sets.
//
// A pattern that does not compile yields an *InvalidPatternError before
// any logger is changed. A logger that cannot be resolved while iterating
// is skipped; the failure is logged as a warning and passed to the
// handler registered with WithAccessErrorHandler as a *LoggerAccessError.
package levels
