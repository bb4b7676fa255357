package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Daymon_Go/internal/logger"
)

// CleanupJob prunes hatchery history older than the retention window.
// A non-positive retention keeps history forever.
type CleanupJob struct {
	history       Service
	retentionDays int
	now           func() time.Time
}

func NewCleanupJob(history Service, retentionDays int) *CleanupJob {
	return &CleanupJob{history: history, retentionDays: retentionDays, now: time.Now}
}

// Process implements worker.Job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if j.retentionDays <= 0 {
		log.Debug(LogMsgCleanupJobSkipped)
		return nil
	}

	start := j.now()
	cutoff := start.AddDate(0, 0, -j.retentionDays)
	deleted, err := j.history.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, LogFieldCutoff, cutoff, LogFieldError, err)
		return fmt.Errorf("prune events before %s: %w", cutoff.Format(time.DateOnly), err)
	}

	log.Info(LogMsgCleanupJobCompleted,
		LogFieldCutoff, cutoff,
		LogFieldDeletedCount, deleted,
		LogFieldDuration, j.now().Sub(start))
	return nil
}
