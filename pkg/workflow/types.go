// Package workflow implements the executor-graph engine: typed envelopes,
// selection edges, and a superstep scheduler with a bounded iteration count.
//
// A workflow is a directed graph of executors. Each superstep the scheduler
// takes every envelope produced by the previous superstep, groups them by
// target executor, and runs all targets concurrently. Cycles are legal and
// bounded: envelopes carry an iteration counter incremented on loop edges,
// and the scheduler aborts with ErrIterationLimitExceeded when the superstep
// budget is spent.
package workflow

import (
	"context"
	"errors"
)

// DefaultMaxIterations bounds supersteps per run.
const DefaultMaxIterations = 10

// ErrIterationLimitExceeded terminates runs that exceed the superstep bound.
var ErrIterationLimitExceeded = errors.New("workflow iteration limit exceeded")

// Envelope is one typed message travelling along an edge.
type Envelope struct {
	From      string // source executor ID ("" for workflow input)
	Data      any
	Iteration int // loop-edge traversal count
}

// Executor is a node in the graph.
type Executor interface {
	// ID is the executor's unique identifier within the workflow.
	ID() string

	// Handle processes one envelope. Outputs go through the Context:
	// Send for downstream messages, Yield for the workflow's final value,
	// Update for incremental user-visible text.
	Handle(ctx context.Context, rc *RunContext, env Envelope) error
}

// ResponseStreamer marks executors whose updates are relayed to the client
// as stream events. The engine discovers these at construction time by
// enumerating the executor set.
type ResponseStreamer interface {
	OutputResponse() bool
}

// OutputYielder declares that Handle records a final value with Yield on
// every terminating path. Build requires it of all streaming executors:
// a streaming path that never yields would stream text to the client
// while the persisted reply stays blank.
type OutputYielder interface {
	YieldsOutput()
}

// Selector picks the subset of a selection group's targets that should
// receive an output envelope.
type Selector func(output any, targets []string) []string

// Event kinds surfaced by RunStream.
type EventKind string

const (
	KindAgentRunUpdate    EventKind = "agent_run_update"
	KindExecutorInvoked   EventKind = "executor_invoked"
	KindExecutorCompleted EventKind = "executor_completed"
	KindExecutorFailed    EventKind = "executor_failed"
	KindWorkflowStatus    EventKind = "workflow_status"
	KindWorkflowOutput    EventKind = "workflow_output"
	KindWorkflowFailed    EventKind = "workflow_failed"
)

// Workflow status values (Event.Status).
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Event is one element of the run stream.
type Event struct {
	Kind       EventKind
	ExecutorID string

	// KindAgentRunUpdate
	Delta string
	Seq   int

	// KindWorkflowOutput
	Output string

	// KindWorkflowStatus
	Status string

	// KindExecutorFailed / KindWorkflowFailed
	Err error
}
