package consolehandler

import (
	"github.com/philipp01105/namedlog/core"
)

// SyncConsoleHandler writes each entry on the caller's goroutine.
type SyncConsoleHandler struct {
	consoleBase
}

func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{}
	h.init(cfg)
	return h
}

// Handle processes a log entry synchronously.
func (h *SyncConsoleHandler) Handle(entry *core.Entry) error {
	if !h.accepts(entry) {
		return nil
	}
	return h.write(entry)
}

// CanRecycleEntry returns true because sync handler processes entries immediately.
func (h *SyncConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close closes the handler. The writer is left open; it is owned by the caller.
func (h *SyncConsoleHandler) Close() error {
	select {
	case <-h.closed:
	default:
		close(h.closed)
	}
	return nil
}
