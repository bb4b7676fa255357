package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/Daymon_Go/internal/logger"
	"github.com/osse101/Daymon_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The ticker starts immediately.
// A non-positive interval disables the job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.FromContext(context.Background()).Info("Scheduled job disabled", "job", name)
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log := logger.FromContext(context.Background()).With("job", name)
		for {
			select {
			case <-ticker.C:
				// Blocks while the pool queue is full; the next tick waits for it
				if err := s.workerPool.Enqueue(job); err != nil {
					if errors.Is(err, worker.ErrPoolStopped) {
						return
					}
					log.Error("Failed to enqueue scheduled job", "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
