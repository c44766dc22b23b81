package tools

import (
	"context"
	"log/slog"
	"sync"
)

// Pool bounds concurrent tool executions process-wide. Parallel workflow
// branches all funnel through one pool so a wide fan-out cannot exhaust
// backend connections.
type Pool struct {
	tasks    chan poolTask
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

type poolTask struct {
	ctx  context.Context
	run  func(ctx context.Context)
	done chan struct{}
}

// NewPool creates a pool with the given worker count.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{
		tasks:  make(chan poolTask),
		stopCh: make(chan struct{}),
	}
	p.start(workers)
	return p
}

func (p *Pool) start(workers int) {
	p.started = true
	slog.Info("Starting tool pool", "worker_count", workers)
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case task := <-p.tasks:
					if task.ctx.Err() == nil {
						task.run(task.ctx)
					}
					close(task.done)
				case <-p.stopCh:
					return
				}
			}
		}()
	}
}

// Run executes fn on a pool worker and waits for it to finish. It returns
// the context error if ctx is cancelled before a worker picks the task up,
// or if the pool is stopped.
func (p *Pool) Run(ctx context.Context, fn func(ctx context.Context)) error {
	task := poolTask{ctx: ctx, run: fn, done: make(chan struct{})}
	select {
	case p.tasks <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopCh:
		return context.Canceled
	}
	select {
	case <-task.done:
		return ctx.Err()
	case <-ctx.Done():
		// The worker still finishes the task; the caller stops waiting.
		return ctx.Err()
	}
}

// Stop shuts the pool down. In-flight tasks finish; queued tasks are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Tool pool stopped")
}
