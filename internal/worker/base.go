package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage per-key timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) closing() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) stopTimer(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[id]; ok {
		timer.Stop()
		delete(w.timers, id)
	}
}

// resetTimer replaces any pending timer for id with a fresh one running fn after d
func (w *BaseWorker) resetTimer(id string, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[id]; ok {
		timer.Stop()
	}
	w.timers[id] = time.AfterFunc(d, fn)
}

func (w *BaseWorker) removeTimer(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, id)
}

func (w *BaseWorker) pendingTimers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	close(w.shutdown)

	// Cancel all pending timers
	w.mu.Lock()
	for id, timer := range w.timers {
		timer.Stop()
		log.Debug("Cancelled pending "+workerName+" execution", "key", id)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
