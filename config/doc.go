// Package config loads a sink setup and level rules from TOML or YAML.
//
//	level  = "info"
//	syslog = "udp://logs.internal:514"
//	caller = true
//
//	[[rules]]
//	pattern = '^app\.'
//	level   = "debug"
//
//	[[rules]]
//	pattern = '^app\.'
//	level   = "error"
//	inverse = true
//
// NAMEDLOG_LEVEL and NAMEDLOG_SYSLOG override the level and syslog keys.
// Apply installs the sinks and runs the rules against the loggers that
// exist at that point.
package config
