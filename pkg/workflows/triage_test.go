package workflows

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/tools"
	"github.com/stanley-ops/stanley/pkg/workflow"
)

// Route keys: distinctive fragments of each agent's system prompt.
const (
	routeTriage     = "triage agent"
	routePlan       = "planning agent"
	routeReplan     = "replan agent"
	routeReview     = "You are a review agent"
	routeClarify    = "clarification agent"
	routeSummary    = "senior operations analyst"
	routeServiceNow = "ServiceNow specialist"
	routeLogs       = "log analytics specialist"
	routeHealth     = "service health specialist"
)

func newTestConfig(t *testing.T, client llm.Client) Config {
	t.Helper()
	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry)
	pool := tools.NewPool(4)
	t.Cleanup(pool.Stop)
	return Config{
		Client:       client,
		Registry:     config.NewSubAgentRegistry(),
		Tools:        registry,
		Pool:         pool,
		DefaultModel: config.ModelGPT41,
	}
}

func userInput(text string) Input {
	return Input{Messages: []llm.Message{{Role: llm.RoleUser, Content: text}}}
}

type runResult struct {
	output    string
	hasOutput bool
	updates   map[string][]string
	invoked   map[string]int
	failure   error
	status    []string
}

// drainRun consumes the event stream to completion.
func drainRun(t *testing.T, events <-chan workflow.Event) runResult {
	t.Helper()
	result := runResult{
		updates: make(map[string][]string),
		invoked: make(map[string]int),
	}
	timeout := time.After(10 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return result
			}
			switch event.Kind {
			case workflow.KindAgentRunUpdate:
				result.updates[event.ExecutorID] = append(result.updates[event.ExecutorID], event.Delta)
			case workflow.KindExecutorInvoked:
				result.invoked[event.ExecutorID]++
			case workflow.KindWorkflowOutput:
				result.output = event.Output
				result.hasOutput = true
			case workflow.KindWorkflowFailed:
				result.failure = event.Err
			case workflow.KindWorkflowStatus:
				result.status = append(result.status, event.Status)
			}
		case <-timeout:
			t.Fatal("workflow run did not terminate")
		}
	}
}

func streamingText(parts ...string) llm.ScriptEntry {
	chunks := make([]llm.Chunk, 0, len(parts)+1)
	for _, part := range parts {
		chunks = append(chunks, &llm.TextChunk{Content: part})
	}
	chunks = append(chunks, &llm.UsageChunk{InputTokens: 20, OutputTokens: 10, TotalTokens: 30})
	return llm.ScriptEntry{Chunks: chunks}
}

func TestTriage_RoutedQuestionStreamsSummary(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": [{"agent": "servicenow", "question": "Look up incident INC123"}]}`})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is resolved; closed yesterday."})
	client.AddRouted(routeSummary, streamingText("INC123 is ", "resolved."))

	wf, err := NewTriage(newTestConfig(t, client))
	require.NoError(t, err)
	require.True(t, wf.IsStreaming(idSummaryAgent))

	result := drainRun(t, wf.RunStream(context.Background(), userInput("What's the status of INC123?")))

	require.NoError(t, result.failure)
	require.True(t, result.hasOutput)
	assert.Equal(t, "INC123 is resolved.", result.output)
	assert.Equal(t, []string{"INC123 is ", "resolved."}, result.updates[idSummaryAgent])
	assert.Equal(t, []string{workflow.StatusInProgress, workflow.StatusCompleted}, result.status)

	// The summary prompt carries the aggregated section with the display name.
	inputs := client.CapturedInputs()
	summaryPrompt := inputs[len(inputs)-1].Messages[1].Content
	assert.Contains(t, summaryPrompt, "What's the status of INC123?")
	assert.Contains(t, summaryPrompt, "## servicenow-agent\nINC123 is resolved; closed yesterday.")
}

func TestTriage_MultiAgentSectionsFollowRegistryOrder(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": [` +
		`{"agent": "servicenow", "question": "Look up INC123"},` +
		`{"agent": "service_health", "question": "Check payments health"}]}`})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 details."})
	client.AddRouted(routeHealth, llm.ScriptEntry{Text: "payments is degraded."})
	client.AddRouted(routeSummary, streamingText("Summary."))

	wf, err := NewTriage(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123 and payments?")))
	require.NoError(t, result.failure)
	assert.Equal(t, "Summary.", result.output)

	inputs := client.CapturedInputs()
	summaryPrompt := inputs[len(inputs)-1].Messages[1].Content
	healthIdx := strings.Index(summaryPrompt, "## service-health-agent")
	snowIdx := strings.Index(summaryPrompt, "## servicenow-agent")
	require.GreaterOrEqual(t, healthIdx, 0)
	require.GreaterOrEqual(t, snowIdx, 0)
	assert.Less(t, healthIdx, snowIdx, "sections follow registry key order")
	assert.Contains(t, summaryPrompt, "\n\n---\n\n")
}

func TestTriage_RejectYieldsRejectionMessage(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: `{"should_reject": true, "reject_reason": "Cooking recipes are out of scope", "tasks": []}`})

	wf, err := NewTriage(newTestConfig(t, client))
	require.NoError(t, err)
	require.True(t, wf.IsStreaming(idRejectQuery))

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Best lasagna recipe?")))
	require.NoError(t, result.failure)
	require.True(t, result.hasOutput)
	assert.Contains(t, result.output, "I'm sorry, but I can't help with that request.")
	assert.Contains(t, result.output, "Cooking recipes are out of scope")
	assert.Contains(t, result.output, "- servicenow:")

	// Single update, identical to the final output, keeps the downstream
	// path uniform with streaming answers.
	require.Len(t, result.updates[idRejectQuery], 1)
	assert.Equal(t, result.output, result.updates[idRejectQuery][0])
	assert.Zero(t, result.invoked[idDispatcher])
}

func TestTriage_EmptyTaskListRoutesToReject(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": []}`})

	wf, err := NewTriage(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("hm")))
	require.NoError(t, result.failure)
	assert.Contains(t, result.output, "I'm sorry, but I can't help")
	assert.Zero(t, result.invoked[idDispatcher])
}

func TestTriage_SubAgentFailureFailsWorkflow(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": [{"agent": "servicenow", "question": "Look up INC123"}]}`})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Error: errors.New("model unavailable")})

	wf, err := NewTriage(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123?")))
	require.Error(t, result.failure)
	assert.Contains(t, result.failure.Error(), "servicenow_executor")
	assert.False(t, result.hasOutput)
	assert.Equal(t, workflow.StatusFailed, result.status[len(result.status)-1])
}

func TestTriage_ToolLoopAnswersFromResults(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: `{"should_reject": false, "reject_reason": "", "tasks": [{"agent": "servicenow", "question": "Look up INC123"}]}`})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Chunks: []llm.Chunk{
		&llm.ToolCallChunk{CallID: "call-1", Name: "get_incident", Arguments: `{"incident_id": "INC123"}`},
		&llm.UsageChunk{InputTokens: 5, OutputTokens: 2, TotalTokens: 7},
	}})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is in progress per the record."})
	client.AddRouted(routeSummary, streamingText("INC123 is in progress."))

	wf, err := NewTriage(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123?")))
	require.NoError(t, result.failure)
	assert.Equal(t, "INC123 is in progress.", result.output)

	// Second sub-agent call saw the tool result message.
	var sawToolResult bool
	for _, input := range client.CapturedInputs() {
		for _, msg := range input.Messages {
			if msg.Role == llm.RoleTool && strings.Contains(msg.Content, "INC123") {
				sawToolResult = true
			}
		}
	}
	assert.True(t, sawToolResult)
}
