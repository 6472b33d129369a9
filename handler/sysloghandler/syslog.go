package sysloghandler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/RackSec/srslog"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/formatter"
	"github.com/philipp01105/namedlog/handler"
)

// SyslogConfig holds configuration for the syslog handler
type SyslogConfig struct {
	// Network is "udp", "tcp", "unix" or "unixgram". Empty dials the local
	// syslog daemon (/dev/log, /var/run/syslog or /var/run/log).
	Network string
	// Addr is the daemon address or socket path; ignored when Network is empty
	Addr string
	// Tag is the program name (default: base name of os.Args[0])
	Tag string
	// Facility (default: srslog.LOG_USER)
	Facility srslog.Priority
	// Formatter renders the message body (default: syslog text layout)
	Formatter formatter.Formatter
	// IncludeCaller is passed to the default formatter
	IncludeCaller bool
	// MinLevel drops entries below this level; NotSet lets everything through
	MinLevel core.Level
}

func applySyslogDefaults(cfg *SyslogConfig) {
	if cfg.Tag == "" {
		cfg.Tag = filepath.Base(os.Args[0])
	}
	if cfg.Facility == 0 {
		cfg.Facility = srslog.LOG_USER
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewSyslogFormatter(cfg.IncludeCaller)
	}
}

// SyslogHandler sends each entry as one syslog message
type SyslogHandler struct {
	w        *srslog.Writer
	fmt      formatter.Formatter
	bufFmt   formatter.BufferFormatter
	facility srslog.Priority
	minLevel core.Level
	stats    *handler.Stats
	bufs     sync.Pool

	closeOnce sync.Once
	closeErr  error
}

// NewSyslogHandler dials the syslog daemon described by cfg
func NewSyslogHandler(cfg SyslogConfig) (*SyslogHandler, error) {
	applySyslogDefaults(&cfg)

	w, err := srslog.Dial(cfg.Network, cfg.Addr, cfg.Facility|srslog.LOG_DEBUG, cfg.Tag)
	if err != nil {
		return nil, fmt.Errorf("dial syslog %s %q: %w", networkName(cfg.Network), cfg.Addr, err)
	}
	if cfg.Network == "" || strings.HasPrefix(cfg.Network, "unix") {
		w.SetFormatter(srslog.UnixFormatter)
	} else {
		w.SetFormatter(srslog.RFC3164Formatter)
	}

	h := &SyslogHandler{
		w:        w,
		fmt:      cfg.Formatter,
		facility: cfg.Facility,
		minLevel: cfg.MinLevel,
		stats:    handler.NewStats(),
		bufs:     sync.Pool{New: func() interface{} { return new(bytes.Buffer) }},
	}
	h.bufFmt, _ = cfg.Formatter.(formatter.BufferFormatter)
	return h, nil
}

func networkName(network string) string {
	if network == "" {
		return "local"
	}
	return network
}

// Severity maps a level onto a syslog severity
func Severity(level core.Level) srslog.Priority {
	switch {
	case level >= core.PanicLevel:
		return srslog.LOG_ALERT
	case level >= core.FatalLevel:
		return srslog.LOG_CRIT
	case level >= core.ErrorLevel:
		return srslog.LOG_ERR
	case level >= core.WarnLevel:
		return srslog.LOG_WARNING
	case level >= core.InfoLevel:
		return srslog.LOG_INFO
	default:
		return srslog.LOG_DEBUG
	}
}

// Handle formats the entry and writes it with the matching severity
func (h *SyslogHandler) Handle(entry *core.Entry) error {
	if entry.Level < h.minLevel {
		return nil
	}

	var msg []byte
	if h.bufFmt != nil {
		buf := h.bufs.Get().(*bytes.Buffer)
		buf.Reset()
		h.bufFmt.FormatEntry(entry, buf)
		msg = buf.Bytes()
		defer h.bufs.Put(buf)
	} else {
		var err error
		if msg, err = h.fmt.Format(entry); err != nil {
			return err
		}
	}

	// WriteWithPriority does not add the facility passed to Dial
	if _, err := h.w.WriteWithPriority(h.facility|Severity(entry.Level), msg); err != nil {
		h.stats.IncrementDropped(entry.Level)
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// CanRecycleEntry returns true; entries are written before Handle returns
func (h *SyslogHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *SyslogHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the connection to the daemon
func (h *SyslogHandler) Close() error {
	h.closeOnce.Do(func() {
		h.closeErr = h.w.Close()
	})
	return h.closeErr
}
