// Package scheduler runs background jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// BatchJob processes one batch and returns the number of items handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) {
	return f(ctx)
}

type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterMailboxJob polls the mailbox every interval, starting immediately.
// A poll that overruns the interval delays the next one instead of overlapping it.
func (m *SchedulerManager) RegisterMailboxJob(job BatchJob, interval time.Duration) error {
	timeout := interval
	if timeout < time.Minute {
		timeout = time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runBatch(ctx, "mailbox poll", job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("mailbox", "intake"),
		gocron.WithName("mailbox-poller"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("mailbox job registered", "interval", interval)
	return nil
}

func (m *SchedulerManager) runBatch(ctx context.Context, name string, job BatchJob) {
	startTime := time.Now()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw(name+" failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow(name+" completed",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw(name+" found nothing to do",
			"duration", time.Since(startTime),
		)
	}
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Shutdown waits for running jobs to finish.
func (m *SchedulerManager) Shutdown() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("scheduler shutdown failed", "error", err)
		return err
	}
	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
