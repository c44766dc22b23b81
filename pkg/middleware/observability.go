// Package middleware emits "thinking" progress events around agent and tool
// invocations. Events go through the ambient bus on the request context, so
// the same agents run silently in background jobs that carry no bus.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/stanley-ops/stanley/pkg/events"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/models"
	"github.com/stanley-ops/stanley/pkg/tools"
)

// Observability publishes agent lifecycle and tool boundary events.
type Observability struct {
	// ShowFuncResult includes tool results in function_end events. Off by
	// default: results can be large and may contain backend internals.
	ShowFuncResult bool
}

// AgentInvoked publishes the agent_invoked event for one agent run.
func (o *Observability) AgentInvoked(ctx context.Context, agentName string) {
	o.publish(ctx, events.ThinkingPayload{
		Type:      events.ThinkingAgentInvoked,
		AgentName: agentName,
		Timestamp: events.Now(),
	})
}

// AgentRun describes one finished agent run for the agent_finished event.
type AgentRun struct {
	AgentName       string
	Model           string
	ExecutionTimeMS int64
	Output          string
	Usage           *models.Usage

	// IncludeOutput carries Output on the event. Set for orchestration
	// agents (triage, review, plan) whose decisions the client renders;
	// sub-agent outputs travel through the workflow instead.
	IncludeOutput bool
}

// AgentFinished publishes the agent_finished event.
func (o *Observability) AgentFinished(ctx context.Context, run AgentRun) {
	payload := events.ThinkingPayload{
		Type:            events.ThinkingAgentFinished,
		AgentName:       run.AgentName,
		Model:           run.Model,
		Usage:           run.Usage,
		ExecutionTimeMS: run.ExecutionTimeMS,
		Timestamp:       events.Now(),
	}
	if run.IncludeOutput {
		payload.Output = run.Output
	}
	o.publish(ctx, payload)
}

// WrapExecutor decorates a tool executor with function_start/function_end
// events around every call.
func (o *Observability) WrapExecutor(inner tools.Executor, agentName string) tools.Executor {
	return &observedExecutor{inner: inner, obs: o, agentName: agentName}
}

func (o *Observability) publish(ctx context.Context, payload events.ThinkingPayload) {
	if err := events.Publish(ctx, events.Event{Type: events.EventTypeThinking, Payload: payload}); err != nil {
		slog.Warn("failed to publish thinking event", "type", payload.Type, "error", err)
	}
}

type observedExecutor struct {
	inner     tools.Executor
	obs       *Observability
	agentName string
}

func (e *observedExecutor) Execute(ctx context.Context, call llm.ToolCall) (*tools.Result, error) {
	e.obs.publish(ctx, events.ThinkingPayload{
		Type:      events.ThinkingFunctionStart,
		AgentName: e.agentName,
		Function:  call.Name,
		Arguments: parseArguments(call.Arguments),
		Timestamp: events.Now(),
	})

	result, err := e.inner.Execute(ctx, call)

	end := events.ThinkingPayload{
		Type:      events.ThinkingFunctionEnd,
		AgentName: e.agentName,
		Function:  call.Name,
		Timestamp: events.Now(),
	}
	if e.obs.ShowFuncResult && result != nil {
		end.Result = result.Content
	}
	e.obs.publish(ctx, end)
	return result, err
}

func (e *observedExecutor) ListTools(ctx context.Context) ([]llm.ToolDefinition, error) {
	return e.inner.ListTools(ctx)
}

func (e *observedExecutor) Close() error { return e.inner.Close() }

// parseArguments best-effort decodes tool call arguments for the event
// payload. Malformed JSON is shown raw rather than dropped.
func parseArguments(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"_raw": raw}
	}
	return args
}
