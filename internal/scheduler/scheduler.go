package scheduler

import (
	"context"
	"sync"
	"time"
)

// PeriodicTask runs a task at regular intervals in the background
type PeriodicTask struct {
	interval   time.Duration
	task       func(ctx context.Context)
	runOnStart bool
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
	running    bool
}

// Option configures a PeriodicTask
type Option func(*PeriodicTask)

// WithRunOnStart runs the task once as soon as the task is started
func WithRunOnStart() Option {
	return func(pt *PeriodicTask) {
		pt.runOnStart = true
	}
}

// New creates a new PeriodicTask instance
func New(interval time.Duration, task func(ctx context.Context), opts ...Option) *PeriodicTask {
	pt := &PeriodicTask{
		interval: interval,
		task:     task,
	}
	for _, opt := range opts {
		opt(pt)
	}
	return pt
}

// Start begins executing the task. The task context is cancelled when the
// parent context is done or Stop is called.
func (pt *PeriodicTask) Start(parent context.Context) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.running {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	pt.cancel = cancel
	pt.running = true

	pt.wg.Add(1)
	go func() {
		defer pt.wg.Done()

		if pt.runOnStart {
			pt.task(ctx)
		}

		ticker := time.NewTicker(pt.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				pt.task(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the task and waits for the current run to return
func (pt *PeriodicTask) Stop() {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if !pt.running {
		return
	}

	pt.cancel()
	pt.wg.Wait()
	pt.running = false
}

// IsRunning returns true if the task is currently scheduled
func (pt *PeriodicTask) IsRunning() bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.running
}
