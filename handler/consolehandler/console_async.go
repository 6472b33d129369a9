package consolehandler

import (
	"sync"
	"time"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/handler"
)

// AsyncConsoleHandler queues entries and writes them from a background
// goroutine, applying the per-level overflow policy when the queue is full.
type AsyncConsoleHandler struct {
	consoleBase
	queue          chan *core.Entry
	wg             sync.WaitGroup
	closeOnce      sync.Once
	overflowPolicy map[core.Level]handler.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	timerMu        sync.Mutex
	blockTimer     *time.Timer
}

func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		queue:          make(chan *core.Entry, cfg.BufferSize),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     handler.NewStoppedTimer(),
	}
	h.init(cfg)

	h.wg.Add(1)
	go h.process()
	return h
}

// Handle sends a log entry to the async queue with overflow policy handling.
// The handler takes ownership of entry and returns it to the pool once written.
func (h *AsyncConsoleHandler) Handle(entry *core.Entry) error {
	if !h.accepts(entry) {
		return nil
	}

	select {
	case <-h.closed:
		// Queue is no longer consumed, write synchronously
		return h.writeAndRelease(entry)
	default:
	}

	policy, ok := h.overflowPolicy[entry.Level]
	if !ok {
		policy = handler.DropNewest
	}

	select {
	case h.queue <- entry:
		return nil
	default:
	}

	switch policy {
	case handler.Block:
		return h.blockingSend(entry)

	case handler.DropOldest:
		select {
		case old := <-h.queue:
			h.stats.IncrementDropped(old.Level)
			core.PutEntry(old)
		default:
		}
		select {
		case h.queue <- entry:
		default:
			h.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
		}
		return nil

	default:
		h.stats.IncrementDropped(entry.Level)
		core.PutEntry(entry)
		return nil
	}
}

// blockingSend waits up to blockTimeout for queue space, then falls back
// to a synchronous write.
func (h *AsyncConsoleHandler) blockingSend(entry *core.Entry) error {
	h.timerMu.Lock()
	defer h.timerMu.Unlock()

	h.blockTimer.Reset(h.blockTimeout)
	select {
	case h.queue <- entry:
		handler.StopTimer(h.blockTimer)
		return nil
	case <-h.blockTimer.C:
		h.stats.IncrementBlocked()
		return h.writeAndRelease(entry)
	case <-h.closed:
		handler.StopTimer(h.blockTimer)
		return h.writeAndRelease(entry)
	}
}

func (h *AsyncConsoleHandler) writeAndRelease(entry *core.Entry) error {
	err := h.write(entry)
	core.PutEntry(entry)
	return err
}

// CanRecycleEntry returns false because the async handler processes entries
// in a background goroutine after Handle returns.
func (h *AsyncConsoleHandler) CanRecycleEntry() bool {
	return false
}

// process handles async log processing
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case entry := <-h.queue:
			// Write errors are not reportable from here; keep consuming.
			_ = h.writeAndRelease(entry)
		case <-h.closed:
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case entry := <-h.queue:
					_ = h.writeAndRelease(entry)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Close stops the background goroutine after draining the queue, bounded
// by DrainTimeout. Safe to call more than once.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()
	})
	return nil
}
