package events

import (
	"context"
	"sync"
	"time"

	"github.com/HullPerse/jekafood/internal/bg"
	applog "github.com/HullPerse/jekafood/internal/log"
	"github.com/HullPerse/jekafood/internal/model"
	"github.com/HullPerse/jekafood/internal/store"
)

// Feed turns store notifications into StoreChanged messages and publishes
// them on a bg.Runner, so a slow broker never holds up a mutation. Each
// message carries the whole state; one overtaken by a newer message before
// it was sent is dropped.
type Feed struct {
	ctx    context.Context
	sink   Sink
	runner bg.Runner
	loc    *time.Location
	logger *applog.Logger

	mu  sync.Mutex
	seq uint64

	sendMu  sync.Mutex
	sent    uint64
	pending sync.WaitGroup
}

func NewFeed(ctx context.Context, sink Sink, runner bg.Runner, loc *time.Location, logger *applog.Logger) *Feed {
	if runner == nil {
		runner = bg.Async{}
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &Feed{
		ctx:    ctx,
		sink:   sink,
		runner: runner,
		loc:    loc,
		logger: logger.WithComponent(applog.ComponentEvents),
	}
}

// Listener returns the store callback that schedules a publish.
func (f *Feed) Listener() store.Listener {
	return func(snap model.Snapshot) {
		msg := NewStoreChanged(snap, time.Now(), f.loc)
		f.mu.Lock()
		f.seq++
		seq := f.seq
		f.mu.Unlock()

		f.pending.Add(1)
		f.runner.Do(func() {
			defer f.pending.Done()
			f.publish(seq, msg)
		})
	}
}

// Wait blocks until every scheduled publish has finished.
func (f *Feed) Wait() {
	f.pending.Wait()
}

func (f *Feed) publish(seq uint64, msg *StoreChanged) {
	f.sendMu.Lock()
	defer f.sendMu.Unlock()
	if seq <= f.sent {
		return
	}
	f.sent = seq
	if err := f.sink.Publish(f.ctx, msg); err != nil {
		f.logger.WarnContext(f.ctx, "publish store change failed",
			applog.FieldOperation, applog.OpPublish,
			applog.FieldError, err)
	}
}
