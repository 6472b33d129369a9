package handler

import (
	"github.com/philipp01105/namedlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is implemented by handlers that are done with an entry once
// Handle returns, so the caller may put it back into the entry pool.
type Recycler interface {
	CanRecycleEntry() bool
}

// StatsProvider is implemented by handlers that track delivery statistics
type StatsProvider interface {
	Stats() Snapshot
}

// CanRecycle reports whether entries passed to h may be recycled after Handle
func CanRecycle(h Handler) bool {
	rc, ok := h.(Recycler)
	return ok && rc.CanRecycleEntry()
}
