package sinks

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// DefaultSyslogSocket is the datagram socket used for a plain "true" on linux
const DefaultSyslogSocket = "/dev/log"

// ErrInvalidSyslogTarget is wrapped by ParseSyslogTarget errors
var ErrInvalidSyslogTarget = errors.New("invalid syslog target")

// SyslogTarget says where syslog messages go. The zero value disables the
// syslog sink.
type SyslogTarget struct {
	Enabled bool
	// Network is "unixgram", "unix", "udp" or "tcp". Empty with Enabled set
	// means the platform's local syslog daemon.
	Network string
	Addr    string
}

// Local returns the platform default target
func Local() SyslogTarget {
	if runtime.GOOS == "linux" {
		return SyslogTarget{Enabled: true, Network: "unixgram", Addr: DefaultSyslogSocket}
	}
	return SyslogTarget{Enabled: true}
}

// String renders the target in the form ParseSyslogTarget accepts
func (t SyslogTarget) String() string {
	switch {
	case !t.Enabled:
		return "false"
	case t.Network == "":
		return "true"
	default:
		return t.Network + "://" + t.Addr
	}
}

// ParseSyslogTarget parses a syslog target:
//
//	"", "false", "off", "no"    disabled
//	"true", "on", "yes"         local daemon (/dev/log on linux)
//	/path/to/socket             unix datagram socket
//	host:port                   UDP
//	scheme://address            explicit, scheme one of tcp, udp, unix, unixgram
func ParseSyslogTarget(s string) (SyslogTarget, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SyslogTarget{}, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return Local(), nil
		}
		return SyslogTarget{}, nil
	}
	switch strings.ToLower(s) {
	case "on", "yes":
		return Local(), nil
	case "off", "no":
		return SyslogTarget{}, nil
	}

	if scheme, addr, ok := strings.Cut(s, "://"); ok {
		scheme = strings.ToLower(scheme)
		switch scheme {
		case "unix", "unixgram":
			if addr == "" {
				return SyslogTarget{}, fmt.Errorf("%w %q: empty socket path", ErrInvalidSyslogTarget, s)
			}
		case "udp", "tcp":
			if _, _, err := net.SplitHostPort(addr); err != nil {
				return SyslogTarget{}, fmt.Errorf("%w %q: %v", ErrInvalidSyslogTarget, s, err)
			}
		default:
			return SyslogTarget{}, fmt.Errorf("%w %q: unknown scheme %q", ErrInvalidSyslogTarget, s, scheme)
		}
		return SyslogTarget{Enabled: true, Network: scheme, Addr: addr}, nil
	}

	if filepath.IsAbs(s) {
		return SyslogTarget{Enabled: true, Network: "unixgram", Addr: s}, nil
	}
	if _, _, err := net.SplitHostPort(s); err != nil {
		return SyslogTarget{}, fmt.Errorf("%w %q: %v", ErrInvalidSyslogTarget, s, err)
	}
	return SyslogTarget{Enabled: true, Network: "udp", Addr: s}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *SyslogTarget) UnmarshalText(text []byte) error {
	parsed, err := ParseSyslogTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (t SyslogTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
