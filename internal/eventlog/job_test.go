package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CleanupOldEvents", mock.Anything, 30).Return(int64(12), nil).Once()

	job := NewCleanupJob(NewService(repo), 30)
	assert.NoError(t, job.Process(context.Background()))
	repo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CleanupOldEvents", mock.Anything, 7).Return(int64(0), errors.New("timeout"))

	job := NewCleanupJob(NewService(repo), 7)
	job.now = func() time.Time { return time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC) }

	err := job.Process(context.Background())
	assert.ErrorContains(t, err, "prune events before 2026-03-03")
	assert.ErrorContains(t, err, "timeout")
}

func TestCleanupJob_KeepsHistoryWithoutRetention(t *testing.T) {
	for _, days := range []int{0, -1} {
		repo := new(MockRepository)
		assert.NoError(t, NewCleanupJob(NewService(repo), days).Process(context.Background()))
		repo.AssertNotCalled(t, "CleanupOldEvents", mock.Anything, mock.Anything)
	}
}
