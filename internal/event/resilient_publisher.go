package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/logger"
)

type retryEntry struct {
	event     Event
	attempt   int
	lastError error
}

// ResilientPublisher publishes to a Bus and retries failures in the background
// with exponential backoff. Events that exhaust their retries, or that find the
// retry queue full, go to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// PublishWithRetry publishes now and queues a retry on failure. It never blocks
// on the retry queue.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := rp.bus.Publish(ctx, evt)
	if err == nil {
		return
	}
	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	rp.enqueue(retryEntry{event: evt, attempt: 1, lastError: err})
}

// Publish implements Bus; failures are retried in the background
func (rp *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	rp.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
		return
	default:
	}
	select {
	case rp.retryQueue <- entry:
	default:
		rp.writeDeadLetter(entry, LogMsgRetryQueueFull)
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry, reason string) {
	logger.FromContext(context.Background()).Warn(reason, "event_type", entry.event.Type, "attempt", entry.attempt)
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempt, entry.lastError); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()
	for {
		select {
		case entry := <-rp.retryQueue:
			if !rp.wait(BackoffDelay(rp.retryDelay, entry.attempt)) {
				rp.attemptOnce(entry)
				rp.drain()
				return
			}
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// wait sleeps for d and reports false if shutdown interrupted it
func (rp *ResilientPublisher) wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-rp.shutdown:
		return false
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	log := logger.FromContext(context.Background())
	err := rp.bus.Publish(context.Background(), entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
		return
	}
	entry.lastError = err
	if entry.attempt >= rp.maxRetries {
		rp.writeDeadLetter(entry, LogMsgEventRetryExhausted)
		return
	}
	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	entry.attempt++
	select {
	case rp.retryQueue <- entry:
	default:
		rp.writeDeadLetter(entry, LogMsgRetryQueueFull)
	}
}

// attemptOnce makes a final attempt during shutdown
func (rp *ResilientPublisher) attemptOnce(entry retryEntry) {
	if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastError = err
		rp.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
	}
}

func (rp *ResilientPublisher) drain() {
	n := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.attemptOnce(entry)
			n++
		default:
			if n > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", n)
			}
			return
		}
	}
}

// Shutdown stops the retry worker after one last attempt at every queued event
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.closeOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		err = ctx.Err()
	}

	if rp.deadLetter != nil {
		if cerr := rp.deadLetter.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
