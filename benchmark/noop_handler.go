package benchmark

import (
	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/handler"
)

// noopHandler isolates the logger path from formatting and I/O
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return noopHandler{}
}

func (noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (noopHandler) CanRecycleEntry() bool {
	return true
}

func (noopHandler) Close() error {
	return nil
}
