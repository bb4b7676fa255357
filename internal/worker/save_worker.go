package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/logger"
)

// Flusher writes one player's current state to storage
type Flusher interface {
	Flush(ctx context.Context, userID string) error
}

// FlushFunc adapts a function to Flusher
type FlushFunc func(ctx context.Context, userID string) error

// Flush calls f
func (f FlushFunc) Flush(ctx context.Context, userID string) error {
	return f(ctx, userID)
}

// SaveWorker debounces save requests per player and runs them on a Pool.
// At most one save per player is in flight; a request that arrives during a
// save queues exactly one follow-up.
type SaveWorker struct {
	BaseWorker

	flusher  Flusher
	pool     *Pool
	debounce time.Duration

	state    sync.Mutex
	dirty    map[string]bool
	inFlight map[string]bool
	retry    map[string]bool
	failed   map[string]bool
}

// NewSaveWorker creates a SaveWorker. Saves run on pool.
func NewSaveWorker(flusher Flusher, pool *Pool, debounce time.Duration) *SaveWorker {
	w := &SaveWorker{
		flusher:  flusher,
		pool:     pool,
		debounce: debounce,
		dirty:    make(map[string]bool),
		inFlight: make(map[string]bool),
		retry:    make(map[string]bool),
		failed:   make(map[string]bool),
	}
	w.init()
	return w
}

// MarkDirty (re)arms the debounce timer for userID
func (w *SaveWorker) MarkDirty(userID string) {
	if w.closing() {
		return
	}
	w.state.Lock()
	w.dirty[userID] = true
	w.state.Unlock()

	w.resetTimer(userID, w.debounce, func() {
		w.removeTimer(userID)
		if w.closing() {
			return
		}
		w.submit(userID)
	})
}

// Pending reports whether userID has an unsaved change or a save in flight
func (w *SaveWorker) Pending(userID string) bool {
	w.state.Lock()
	defer w.state.Unlock()
	return w.dirty[userID] || w.inFlight[userID] || w.retry[userID] || w.failed[userID]
}

// markFailed remembers userID for the next RetryFailed sweep
func (w *SaveWorker) markFailed(userID string, err error) {
	w.state.Lock()
	defer w.state.Unlock()
	if err != nil {
		w.failed[userID] = true
		return
	}
	delete(w.failed, userID)
}

// RetryFailed resubmits every player whose last save failed and returns
// how many were resubmitted
func (w *SaveWorker) RetryFailed() int {
	if w.closing() {
		return 0
	}
	w.state.Lock()
	users := make([]string, 0, len(w.failed))
	for userID := range w.failed {
		users = append(users, userID)
	}
	w.failed = make(map[string]bool)
	w.state.Unlock()

	for _, userID := range users {
		w.submit(userID)
	}
	return len(users)
}

// acquire marks userID in flight. When a save is already running it queues a
// retry instead and returns false.
func (w *SaveWorker) acquire(userID string) bool {
	w.state.Lock()
	defer w.state.Unlock()
	if w.inFlight[userID] {
		w.retry[userID] = true
		return false
	}
	w.inFlight[userID] = true
	delete(w.dirty, userID)
	w.wg.Add(1)
	return true
}

// release ends a save and reports whether a retry was queued meanwhile
func (w *SaveWorker) release(userID string) bool {
	w.state.Lock()
	defer w.state.Unlock()
	delete(w.inFlight, userID)
	again := w.retry[userID]
	delete(w.retry, userID)
	if again && w.closing() {
		// picked up by the final flush
		w.dirty[userID] = true
		again = false
	}
	w.wg.Done()
	return again
}

func (w *SaveWorker) submit(userID string) {
	if !w.acquire(userID) {
		logger.FromContext(context.Background()).Debug(LogMsgSaveRetryQueued, "user_id", userID)
		return
	}

	err := w.pool.Enqueue(JobFunc(func(ctx context.Context) error {
		w.run(ctx, userID)
		return nil
	}))
	if err != nil {
		logger.FromContext(context.Background()).Error(LogMsgSaveEnqueueFailed, "user_id", userID, "error", err)
		w.state.Lock()
		w.dirty[userID] = true
		w.state.Unlock()
		w.release(userID)
	}
}

func (w *SaveWorker) run(ctx context.Context, userID string) {
	err := w.flusher.Flush(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "user_id", userID, "error", err)
	}
	w.markFailed(userID, err)
	if w.release(userID) {
		w.submit(userID)
	}
}

// FlushNow cancels the debounce and saves userID on the caller's goroutine.
// When a save is already running the flush is queued behind it and FlushNow
// returns nil.
func (w *SaveWorker) FlushNow(ctx context.Context, userID string) error {
	w.stopTimer(userID)
	if !w.acquire(userID) {
		return nil
	}

	err := w.flusher.Flush(ctx, userID)
	w.markFailed(userID, err)
	if w.release(userID) {
		w.submit(userID)
	}
	return err
}

// Shutdown cancels pending timers, waits for in-flight saves and then writes
// every player that was still dirty
func (w *SaveWorker) Shutdown(ctx context.Context) error {
	waitErr := w.shutdownInternal(ctx, SaveWorkerName)

	w.state.Lock()
	users := make([]string, 0, len(w.dirty))
	for userID := range w.dirty {
		users = append(users, userID)
	}
	for userID := range w.failed {
		if !w.dirty[userID] {
			users = append(users, userID)
		}
	}
	w.dirty = make(map[string]bool)
	w.failed = make(map[string]bool)
	w.state.Unlock()

	log := logger.FromContext(ctx)
	if len(users) > 0 {
		log.Info(LogMsgFinalFlush, "count", len(users))
	}

	errs := []error{waitErr}
	for _, userID := range users {
		if err := w.flusher.Flush(ctx, userID); err != nil {
			log.Error(LogMsgSaveFailed, "user_id", userID, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
