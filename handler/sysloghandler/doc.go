// Package sysloghandler delivers entries to a syslog daemon.
//
// Messages carry the syslog text layout, which is the console layout
// without a timestamp since the daemon stamps records itself:
//
//	<logger>.<func>[PID: <pid> | lineno: <line>] <LEVEL>: <message>
//
// The facility defaults to USER. Levels map onto syslog severities with
// Severity; TRACE and DEBUG both become LOG_DEBUG.
package sysloghandler
