package handler

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/namedlog/core"
)

type recordingHandler struct {
	messages []string
	err      error
	recycle  bool
	closed   bool
}

func (r *recordingHandler) Handle(e *core.Entry) error {
	r.messages = append(r.messages, e.Message)
	return r.err
}

func (r *recordingHandler) Close() error {
	r.closed = true
	return r.err
}

func (r *recordingHandler) CanRecycleEntry() bool { return r.recycle }

func TestMultiHandler_FanOut(t *testing.T) {
	h1 := &recordingHandler{recycle: true}
	h2 := &recordingHandler{recycle: true}
	multi := NewMultiHandler(h1, nil, h2)

	if len(multi.Handlers()) != 2 {
		t.Fatalf("nil children should be skipped, got %d", len(multi.Handlers()))
	}

	if err := multi.Handle(&core.Entry{Message: "multi test"}); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if len(h1.messages) != 1 || len(h2.messages) != 1 {
		t.Errorf("every child should receive the entry: %v %v", h1.messages, h2.messages)
	}
	if !multi.CanRecycleEntry() {
		t.Error("all children recycle, multi handler should too")
	}
}

func TestMultiHandler_CombinesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	h1 := &recordingHandler{err: errA}
	h2 := &recordingHandler{}
	h3 := &recordingHandler{err: errB}
	multi := NewMultiHandler(h1, h2, h3)

	err := multi.Handle(&core.Entry{Message: "m"})
	if got := multierr.Errors(err); len(got) != 2 {
		t.Fatalf("expected 2 combined errors, got %v", err)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("combined error should wrap both failures: %v", err)
	}
	if len(h2.messages) != 1 {
		t.Error("a failing child must not stop delivery to the others")
	}

	if err := multi.Close(); len(multierr.Errors(err)) != 2 {
		t.Errorf("Close() should combine child errors, got %v", err)
	}
	if !h1.closed || !h2.closed || !h3.closed {
		t.Error("every child should be closed")
	}
	if multi.CanRecycleEntry() {
		t.Error("children that do not recycle disable recycling")
	}
}

func TestStats_Counters(t *testing.T) {
	s := NewStats()
	s.IncrementDropped(core.TraceLevel)
	s.IncrementDropped(core.InfoLevel)
	s.IncrementDropped(core.InfoLevel)
	s.IncrementDropped(core.Level(100))
	s.IncrementBlocked()
	s.IncrementProcessed()

	if got := s.GetDropped(core.InfoLevel); got != 2 {
		t.Errorf("GetDropped(INFO) = %d, want 2", got)
	}
	if got := s.GetDropped(core.NotSet); got != 1 {
		t.Errorf("out-of-range levels should count as NotSet, got %d", got)
	}
	if got := s.GetTotalDropped(); got != 4 {
		t.Errorf("GetTotalDropped() = %d, want 4", got)
	}

	snap := s.GetSnapshot()
	if snap.DroppedTotal[core.TraceLevel] != 1 || snap.BlockedTotal != 1 || snap.ProcessedTotal != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if _, ok := snap.DroppedTotal[core.ErrorLevel]; ok {
		t.Error("levels without drops should be omitted from the snapshot")
	}

	s.Reset()
	if s.GetTotalDropped() != 0 || s.GetBlocked() != 0 || s.GetProcessed() != 0 {
		t.Error("Reset() should zero every counter")
	}
}

func TestDefaultLevelPolicy(t *testing.T) {
	p := DefaultLevelPolicy()
	if p[core.InfoLevel] != DropNewest {
		t.Errorf("INFO policy = %v, want DropNewest", p[core.InfoLevel])
	}
	if p[core.ErrorLevel] != Block || p[core.FatalLevel] != Block {
		t.Error("ERROR and above should block")
	}
}

func TestStoppedTimer(t *testing.T) {
	timer := NewStoppedTimer()
	select {
	case <-timer.C:
		t.Fatal("stopped timer must not fire")
	case <-time.After(5 * time.Millisecond):
	}

	timer.Reset(time.Millisecond)
	time.Sleep(3 * time.Millisecond)
	StopTimer(timer)
	select {
	case <-timer.C:
		t.Fatal("StopTimer should drain a fired timer")
	default:
	}
}
