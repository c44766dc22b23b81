package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Workflow is a built executor graph. Workflows are constructed per request
// (executors such as aggregators hold fan-in state), so one Workflow value
// serves one RunStream call.
type Workflow struct {
	name      string
	executors map[string]Executor
	edges     []edgeGroup
	start     string
	maxIter   int
	streaming map[string]bool
}

// Name returns the workflow name.
func (w *Workflow) Name() string { return w.name }

// IsStreaming reports whether the executor's updates are user-visible.
func (w *Workflow) IsStreaming(executorID string) bool { return w.streaming[executorID] }

// RunContext is handed to executors; it collects their outputs and carries
// run-scoped services.
type RunContext struct {
	run        *run
	executorID string

	mu      sync.Mutex
	sends   []Envelope
	seq     int
}

// Send emits a message for downstream executors; the edge groups route it
// in the next superstep.
func (rc *RunContext) Send(data any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sends = append(rc.sends, Envelope{From: rc.executorID, Data: data, Iteration: rc.run.iteration(rc.executorID)})
}

// Yield records the workflow's final output. The last yield wins.
func (rc *RunContext) Yield(text string) {
	rc.run.setOutput(text)
}

// Update publishes one incremental text chunk, tagged with the executor ID
// and a per-executor monotonically increasing sequence.
func (rc *RunContext) Update(ctx context.Context, text string) {
	rc.mu.Lock()
	seq := rc.seq
	rc.seq++
	rc.mu.Unlock()
	rc.run.emit(ctx, Event{
		Kind:       KindAgentRunUpdate,
		ExecutorID: rc.executorID,
		Delta:      text,
		Seq:        seq,
	})
}

// run is the per-invocation state of a workflow execution.
type run struct {
	wf     *Workflow
	out    chan Event
	logger *slog.Logger

	mu         sync.Mutex
	output     string
	hasOutput  bool
	iterations map[string]int // executor ID → iteration count of its current envelope
}

func (r *run) setOutput(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = text
	r.hasOutput = true
}

func (r *run) iteration(executorID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.iterations[executorID]
}

func (r *run) setIteration(executorID string, iter int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iterations[executorID] = iter
}

func (r *run) emit(ctx context.Context, event Event) {
	select {
	case r.out <- event:
	case <-ctx.Done():
	}
}

// RunStream executes the workflow and returns its event stream. The channel
// is closed when the run terminates; the terminal event is KindWorkflowOutput
// (then KindWorkflowStatus completed) on success or KindWorkflowFailed.
func (w *Workflow) RunStream(ctx context.Context, input any) <-chan Event {
	r := &run{
		wf:         w,
		out:        make(chan Event, 64),
		logger:     slog.Default().With("workflow", w.name),
		iterations: make(map[string]int),
	}
	go r.loop(ctx, input)
	return r.out
}

func (r *run) loop(ctx context.Context, input any) {
	defer close(r.out)
	r.emit(ctx, Event{Kind: KindWorkflowStatus, Status: StatusInProgress})

	pending := map[string][]Envelope{
		r.wf.start: {{Data: input}},
	}

	for superstep := 0; len(pending) > 0; superstep++ {
		if superstep >= r.wf.maxIter {
			r.logger.Warn("iteration limit exceeded", "supersteps", superstep)
			r.fail(ctx, "", ErrIterationLimitExceeded)
			return
		}

		ids := make([]string, 0, len(pending))
		for id := range pending {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		// All ready executors run concurrently; the first failure cancels
		// the rest of the superstep.
		group, groupCtx := errgroup.WithContext(ctx)
		contexts := make([]*RunContext, len(ids))
		var (
			failedMu sync.Mutex
			failedID string
		)
		for i, id := range ids {
			exec := r.wf.executors[id]
			envs := pending[id]
			rc := &RunContext{run: r, executorID: id}
			contexts[i] = rc

			r.setIteration(id, maxIteration(envs))
			r.emit(ctx, Event{Kind: KindExecutorInvoked, ExecutorID: id})

			group.Go(func() error {
				for _, env := range envs {
					if err := exec.Handle(groupCtx, rc, env); err != nil {
						failedMu.Lock()
						if failedID == "" {
							failedID = id
						}
						failedMu.Unlock()
						return fmt.Errorf("executor %s: %w", id, err)
					}
				}
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			r.emit(ctx, Event{Kind: KindExecutorFailed, ExecutorID: failedID, Err: err})
			r.fail(ctx, failedID, err)
			return
		}
		for _, id := range ids {
			r.emit(ctx, Event{Kind: KindExecutorCompleted, ExecutorID: id})
		}

		next := make(map[string][]Envelope)
		for _, rc := range contexts {
			for _, env := range rc.sends {
				r.route(env, next)
			}
		}
		pending = next
	}

	r.mu.Lock()
	output, hasOutput := r.output, r.hasOutput
	r.mu.Unlock()
	if hasOutput {
		r.emit(ctx, Event{Kind: KindWorkflowOutput, Output: output})
	}
	r.emit(ctx, Event{Kind: KindWorkflowStatus, Status: StatusCompleted})
}

func (r *run) fail(ctx context.Context, executorID string, err error) {
	r.emit(ctx, Event{Kind: KindWorkflowFailed, ExecutorID: executorID, Err: err})
	r.emit(ctx, Event{Kind: KindWorkflowStatus, Status: StatusFailed})
}

// route dispatches one output envelope along the source's edge groups.
func (r *run) route(env Envelope, next map[string][]Envelope) {
	for _, group := range r.wf.edges {
		if group.source != env.From {
			continue
		}
		targets := group.targets
		if group.selector != nil {
			targets = group.selector(env.Data, group.targets)
		}
		for _, target := range targets {
			routed := env
			if group.loop {
				routed.Iteration++
			}
			next[target] = append(next[target], routed)
		}
	}
}

func maxIteration(envs []Envelope) int {
	max := 0
	for _, env := range envs {
		if env.Iteration > max {
			max = env.Iteration
		}
	}
	return max
}
