package sysloghandler

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/RackSec/srslog"

	"github.com/philipp01105/namedlog/core"
)

func listenUDP(t *testing.T) net.PacketConn {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listener unavailable: %v", err)
	}
	t.Cleanup(func() { pc.Close() })
	return pc
}

func readMessage(t *testing.T, pc net.PacketConn) string {
	t.Helper()
	buf := make([]byte, 4096)
	if err := pc.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("no syslog message received: %v", err)
	}
	return string(buf[:n])
}

func newEntry(level core.Level, name, msg string) *core.Entry {
	e := core.GetEntry()
	e.Level = level
	e.Logger = name
	e.Message = msg
	return e
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		level core.Level
		want  srslog.Priority
	}{
		{core.NotSet, srslog.LOG_DEBUG},
		{core.TraceLevel, srslog.LOG_DEBUG},
		{core.DebugLevel, srslog.LOG_DEBUG},
		{core.InfoLevel, srslog.LOG_INFO},
		{core.WarnLevel, srslog.LOG_WARNING},
		{core.ErrorLevel, srslog.LOG_ERR},
		{core.FatalLevel, srslog.LOG_CRIT},
		{core.PanicLevel, srslog.LOG_ALERT},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := Severity(tt.level); got != tt.want {
				t.Errorf("Severity(%v) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestSyslogHandler_UDP(t *testing.T) {
	pc := listenUDP(t)
	h, err := NewSyslogHandler(SyslogConfig{
		Network: "udp",
		Addr:    pc.LocalAddr().String(),
		Tag:     "namedlog-test",
	})
	if err != nil {
		t.Fatalf("NewSyslogHandler: %v", err)
	}
	defer h.Close()

	if err := h.Handle(newEntry(core.WarnLevel, "app.db", "disk almost full")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	msg := readMessage(t, pc)
	// USER facility (1<<3) | LOG_WARNING (4)
	if !strings.HasPrefix(msg, "<12>") {
		t.Errorf("expected priority <12>, got %q", msg)
	}
	if !strings.Contains(msg, "namedlog-test["+strconv.Itoa(os.Getpid())+"]") {
		t.Errorf("expected tag and pid, got %q", msg)
	}
	want := "app.db[PID: " + strconv.Itoa(os.Getpid()) + "] WARN: disk almost full"
	if !strings.Contains(msg, want) {
		t.Errorf("expected %q in %q", want, msg)
	}

	if got := h.Stats().ProcessedTotal; got != 1 {
		t.Errorf("ProcessedTotal = %d, want 1", got)
	}
}

func TestSyslogHandler_MinLevel(t *testing.T) {
	pc := listenUDP(t)
	h, err := NewSyslogHandler(SyslogConfig{
		Network:  "udp",
		Addr:     pc.LocalAddr().String(),
		MinLevel: core.ErrorLevel,
	})
	if err != nil {
		t.Fatalf("NewSyslogHandler: %v", err)
	}
	defer h.Close()

	_ = h.Handle(newEntry(core.InfoLevel, "app", "filtered"))
	_ = h.Handle(newEntry(core.ErrorLevel, "app", "delivered"))

	msg := readMessage(t, pc)
	if !strings.HasPrefix(msg, "<11>") || !strings.Contains(msg, "ERROR: delivered") {
		t.Errorf("expected only the error message, got %q", msg)
	}
	if got := h.Stats().ProcessedTotal; got != 1 {
		t.Errorf("ProcessedTotal = %d, want 1", got)
	}
}

func TestSyslogHandler_Unixgram(t *testing.T) {
	dir, err := os.MkdirTemp("", "slog")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "log.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		t.Skipf("unixgram unavailable: %v", err)
	}
	defer conn.Close()

	h, err := NewSyslogHandler(SyslogConfig{Network: "unixgram", Addr: path, Tag: "svc"})
	if err != nil {
		t.Fatalf("NewSyslogHandler: %v", err)
	}

	if err := h.Handle(newEntry(core.DebugLevel, "", "hello")); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	msg := readMessage(t, conn)
	if !strings.HasPrefix(msg, "<15>") {
		t.Errorf("expected priority <15>, got %q", msg)
	}
	if !strings.Contains(msg, "root[PID: ") || !strings.Contains(msg, "DEBUG: hello") {
		t.Errorf("unexpected message %q", msg)
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestNewSyslogHandler_DialError(t *testing.T) {
	_, err := NewSyslogHandler(SyslogConfig{
		Network: "unixgram",
		Addr:    filepath.Join(t.TempDir(), "missing.sock"),
	})
	if err == nil {
		t.Fatal("expected an error dialing a missing socket")
	}
	if !strings.Contains(err.Error(), "dial syslog unixgram") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSyslogHandler_Facility(t *testing.T) {
	tests := []struct {
		name     string
		facility srslog.Priority
		level    core.Level
		want     string
	}{
		{"default user error", 0, core.ErrorLevel, "<11>"},
		{"user info", srslog.LOG_USER, core.InfoLevel, "<14>"},
		{"local0 error", srslog.LOG_LOCAL0, core.ErrorLevel, "<131>"},
		{"daemon fatal", srslog.LOG_DAEMON, core.FatalLevel, "<26>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := listenUDP(t)
			h, err := NewSyslogHandler(SyslogConfig{
				Network:  "udp",
				Addr:     pc.LocalAddr().String(),
				Facility: tt.facility,
			})
			if err != nil {
				t.Fatalf("NewSyslogHandler: %v", err)
			}
			defer h.Close()

			if err := h.Handle(newEntry(tt.level, "app", "msg")); err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if msg := readMessage(t, pc); !strings.HasPrefix(msg, tt.want) {
				t.Errorf("expected priority %s, got %q", tt.want, msg)
			}
		})
	}
}
