package scheduler

import (
	"book_translator/utils"
	"context"
	"log/slog"
	"sync"
	"time"
)

type JobFunc func(ctx context.Context) error

type intervalJob struct {
	name           string
	fn             JobFunc
	interval       time.Duration
	runImmediately bool
}

type Scheduler struct {
	jobs   []intervalJob
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// NewIntervalJob registers fn to run every interval. Jobs with a non-positive interval are ignored.
func (s *Scheduler) NewIntervalJob(name string, fn JobFunc, interval time.Duration, runImmediately bool) {
	if interval <= 0 {
		slog.Warn("job disabled, interval must be positive", slog.String("job", name))
		return
	}
	s.jobs = append(s.jobs, intervalJob{name: name, fn: fn, interval: interval, runImmediately: runImmediately})
}

func (s *Scheduler) Start() {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run(job)
		}()
	}
	slog.Info("scheduler started", slog.Int("jobs", len(s.jobs)))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) run(job intervalJob) {
	if job.runImmediately {
		s.exec(job)
	}

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.exec(job)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) exec(job intervalJob) {
	ctx := utils.ContextWithRqID(s.ctx, utils.NewRequestID())
	rqID := utils.GetRequestIDFromCtx(ctx)
	start := time.Now()

	if err := job.fn(ctx); err != nil {
		slog.Error("job failed", slog.String("job", job.name), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return
	}

	slog.Debug("job completed", slog.String("job", job.name), slog.String("rqID", rqID), slog.Duration("took", time.Since(start)))
}
