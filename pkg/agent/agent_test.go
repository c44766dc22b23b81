package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/events"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/middleware"
	"github.com/stanley-ops/stanley/pkg/tools"
)

func userInput(content string) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: content}}
}

func drainEvents(t *testing.T, bus *events.Bus) []events.Event {
	t.Helper()
	bus.Close()
	var out []events.Event
	for {
		event, err := bus.Next(context.Background())
		require.NoError(t, err)
		if event.Type == events.EventTypeDone {
			return out
		}
		out = append(out, event)
	}
}

func TestAgentRunPlainText(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Text: "All clear."})

	a := New(Config{
		Name:         "service-health-agent",
		Instructions: "You are a service health specialist.",
		Model:        "gpt-4.1",
		Client:       client,
	})
	resp, err := a.Run(context.Background(), userInput("Is api healthy?"))
	require.NoError(t, err)
	assert.Equal(t, "All clear.", resp.Text)
	assert.Equal(t, 15, resp.Usage.TotalTokens)

	// System prompt precedes the user message.
	inputs := client.CapturedInputs()
	require.Len(t, inputs, 1)
	assert.Equal(t, llm.RoleSystem, inputs[0].Messages[0].Role)
}

func TestAgentToolLoop(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Chunks: []llm.Chunk{
		&llm.ToolCallChunk{CallID: "call_1", Name: "get_incident", Arguments: `{"incident_id":"INC123"}`},
		&llm.UsageChunk{TotalTokens: 20},
	}})
	client.AddSequential(llm.ScriptEntry{Text: "INC123 is in progress."})

	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry)
	pool := tools.NewPool(2)
	defer pool.Stop()
	executor := tools.NewScopedExecutor(registry, pool, []string{"get_incident"}, 0)

	bus := events.NewBus(64)
	ctx := events.WithBus(context.Background(), bus)

	a := New(Config{
		Name:     "servicenow-agent",
		Model:    "gpt-4.1",
		Client:   client,
		Executor: executor,
	})
	resp, err := a.Run(ctx, userInput("Check incident INC123 in ServiceNow."))
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "INC123")
	assert.Equal(t, 35, resp.Usage.TotalTokens)

	// Second call carries the tool result back to the model.
	inputs := client.CapturedInputs()
	require.Len(t, inputs, 2)
	last := inputs[1].Messages[len(inputs[1].Messages)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)

	// agent_invoked → function_start → function_end → agent_finished.
	var types []string
	for _, event := range drainEvents(t, bus) {
		types = append(types, event.Payload.(events.ThinkingPayload).Type)
	}
	assert.Equal(t, []string{
		events.ThinkingAgentInvoked,
		events.ThinkingFunctionStart,
		events.ThinkingFunctionEnd,
		events.ThinkingAgentFinished,
	}, types)
}

func TestAgentToolLoopExhausted(t *testing.T) {
	client := llm.NewScriptedClient()
	for i := 0; i < 3; i++ {
		client.AddSequential(llm.ScriptEntry{Chunks: []llm.Chunk{
			&llm.ToolCallChunk{CallID: "c", Name: "get_incident", Arguments: `{"incident_id":"INC1"}`},
			&llm.UsageChunk{TotalTokens: 1},
		}})
	}

	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry)
	pool := tools.NewPool(1)
	defer pool.Stop()

	a := New(Config{
		Name:           "servicenow-agent",
		Model:          "gpt-4.1",
		Client:         client,
		Executor:       tools.NewScopedExecutor(registry, pool, []string{"get_incident"}, 0),
		ToolCallBudget: 2,
	})
	_, err := a.Run(context.Background(), userInput("loop forever"))
	assert.ErrorIs(t, err, ErrToolLoopExhausted)
}

func TestAgentRunStreamAndCollect(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Chunks: []llm.Chunk{
		&llm.TextChunk{Content: "Hello "},
		&llm.TextChunk{Content: "world"},
		&llm.UsageChunk{InputTokens: 7, OutputTokens: 2, TotalTokens: 9},
	}})

	a := New(Config{Name: "summary_agent", Model: "gpt-4.1", Client: client})
	updates, err := a.RunStream(context.Background(), userInput("greet"))
	require.NoError(t, err)

	resp, err := CollectStream(context.Background(), updates)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", resp.Text)
	assert.Equal(t, 9, resp.Usage.TotalTokens)
}

func TestAgentFinishedEventCarriesModelAndTiming(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Text: "All clear."})

	bus := events.NewBus(64)
	ctx := events.WithBus(context.Background(), bus)

	a := New(Config{Name: "service-health-agent", Model: "gpt-4.1-mini", Client: client})
	_, err := a.Run(ctx, userInput("Is api healthy?"))
	require.NoError(t, err)

	drained := drainEvents(t, bus)
	require.Len(t, drained, 2)
	finished := drained[1].Payload.(events.ThinkingPayload)
	require.Equal(t, events.ThinkingAgentFinished, finished.Type)
	assert.Equal(t, "gpt-4.1-mini", finished.Model)
	assert.GreaterOrEqual(t, finished.ExecutionTimeMS, int64(0))
	require.NotNil(t, finished.Usage)
}

func TestAgentRunStructuredOutputOnFinishedEvent(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Text: `{"should_reject":true,"reject_reason":"out of scope"}`})

	bus := events.NewBus(64)
	ctx := events.WithBus(context.Background(), bus)

	a := New(Config{
		Name:                  "triage_agent",
		Model:                 "gpt-4.1",
		Client:                client,
		Obs:                   &middleware.Observability{},
		IncludeOutputInEvents: true,
	})
	var out struct {
		ShouldReject bool   `json:"should_reject"`
		RejectReason string `json:"reject_reason"`
	}
	_, err := a.RunStructured(ctx, userInput("Compose me a haiku."), &out)
	require.NoError(t, err)
	assert.True(t, out.ShouldReject)

	drained := drainEvents(t, bus)
	require.Len(t, drained, 2)
	finished := drained[1].Payload.(events.ThinkingPayload)
	assert.Equal(t, events.ThinkingAgentFinished, finished.Type)
	assert.Contains(t, finished.Output, "out of scope")
	require.NotNil(t, finished.Usage)
}
