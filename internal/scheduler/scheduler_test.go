package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type filesCleanerStub struct {
	mu     sync.Mutex
	calls  int
	maxAge time.Duration
	err    error
}

func (f *filesCleanerStub) DeleteOldFiles(ctx context.Context, maxAge time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.maxAge = maxAge
	return 2, f.err
}

func (f *filesCleanerStub) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestScheduler_RunsUntilStopped(t *testing.T) {
	cleaner := &filesCleanerStub{}
	s := New()
	s.NewIntervalJob("cleanup", DeleteOldFilesJob(cleaner, time.Hour), 10*time.Millisecond, true)

	s.Start()

	assert.Eventually(t, func() bool { return cleaner.Calls() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()

	calls := cleaner.Calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, cleaner.Calls())
	assert.Equal(t, time.Hour, cleaner.maxAge)
}

func TestScheduler_RunImmediately(t *testing.T) {
	cleaner := &filesCleanerStub{}
	s := New()
	s.NewIntervalJob("cleanup", DeleteOldFilesJob(cleaner, time.Minute), time.Hour, true)

	s.Start()
	assert.Eventually(t, func() bool { return cleaner.Calls() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, 1, cleaner.Calls())
}

func TestScheduler_DisabledJob(t *testing.T) {
	cleaner := &filesCleanerStub{}
	s := New()
	s.NewIntervalJob("cleanup", DeleteOldFilesJob(cleaner, time.Minute), 0, true)

	s.Start()
	s.Stop()

	assert.Equal(t, 0, cleaner.Calls())
}

func TestDeleteOldFilesJob_Err(t *testing.T) {
	cleanerErr := errors.New("permission denied")
	cleaner := &filesCleanerStub{err: cleanerErr}

	err := DeleteOldFilesJob(cleaner, time.Minute)(context.Background())

	assert.ErrorIs(t, err, cleanerErr)
	assert.Equal(t, 1, cleaner.Calls())
}
