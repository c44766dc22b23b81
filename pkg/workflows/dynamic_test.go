package workflows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/workflow"
)

const (
	planSingleServiceNow = `{"action": "plan", "reject_reason": "", "clarification_reason": "", ` +
		`"plan": [{"step": 1, "agent": "servicenow", "question": "Get INC123"}], "plan_reason": "single lookup"}`
	reviewComplete   = `{"is_complete": true, "missing_aspects": [], "suggested_approach": "", "confidence": 0.95}`
	reviewIncomplete = `{"is_complete": false, "missing_aspects": ["service health"], ` +
		`"suggested_approach": "check payments health", "confidence": 0.4}`
	replanAccept = `{"accept_review": true, "new_plan": [{"step": 1, "agent": "service_health", ` +
		`"question": "Check payments health"}], "rejection_reason": ""}`
	replanDecline = `{"accept_review": false, "new_plan": [], "rejection_reason": "results already cover the question"}`
)

func TestDynamic_PlanExecuteReviewComplete(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: planSingleServiceNow})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is resolved."})
	client.AddRouted(routeReview, llm.ScriptEntry{Text: reviewComplete})
	client.AddRouted(routeSummary, streamingText("INC123 is ", "resolved."))

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)
	require.True(t, wf.IsStreaming(idReviewExecutor))
	require.True(t, wf.IsStreaming(idStreamingSummary))

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123?")))
	require.NoError(t, result.failure)
	require.True(t, result.hasOutput)
	assert.Equal(t, "INC123 is resolved.", result.output)
	assert.Equal(t, []string{"INC123 is ", "resolved."}, result.updates[idReviewExecutor])
	assert.Equal(t, 1, result.invoked[idOrchestrator])
	assert.Equal(t, 1, result.invoked[idReviewExecutor])
	assert.Zero(t, result.invoked[idStreamingSummary])

	// The review prompt carries the step-grouped execution results.
	var reviewPrompt string
	for _, input := range client.CapturedInputs() {
		if strings.Contains(input.Messages[0].Content, routeReview) {
			reviewPrompt = input.Messages[1].Content
		}
	}
	assert.Contains(t, reviewPrompt, "Step 1 | Agent: servicenow")
	assert.Contains(t, reviewPrompt, "Question: Get INC123")
}

func TestDynamic_ReviewRetryMergesSteps(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: planSingleServiceNow})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is open."})
	client.AddRouted(routeReview, llm.ScriptEntry{Text: reviewIncomplete})
	client.AddRouted(routeReview, llm.ScriptEntry{Text: reviewComplete})
	client.AddRouted(routeReplan, llm.ScriptEntry{Text: replanAccept})
	client.AddRouted(routeHealth, llm.ScriptEntry{Text: "payments is degraded."})
	client.AddRouted(routeSummary, streamingText("INC123 open; payments degraded."))

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123 and payments?")))
	require.NoError(t, result.failure)
	assert.Equal(t, "INC123 open; payments degraded.", result.output)
	assert.Equal(t, 2, result.invoked[idOrchestrator])
	assert.Equal(t, 2, result.invoked[idReviewExecutor])
	assert.Equal(t, 2, result.invoked[idTriage], "plan once, replan once")

	// Retry results merge after the executed steps: the fresh step 1 lands
	// as step 2 in the combined results.
	inputs := client.CapturedInputs()
	summaryPrompt := inputs[len(inputs)-1].Messages[1].Content
	assert.Contains(t, summaryPrompt, "Step 1 | Agent: servicenow")
	assert.Contains(t, summaryPrompt, "Step 2 | Agent: service_health")

	// The replan prompt carried the review feedback.
	var replanPrompt string
	for _, input := range inputs {
		if strings.Contains(input.Messages[0].Content, routeReplan) {
			replanPrompt = input.Messages[1].Content
		}
	}
	assert.Contains(t, replanPrompt, "Missing aspects: service health")
	assert.Contains(t, replanPrompt, "Suggested approach: check payments health")
}

func TestDynamic_ReplanDeclineStreamsExistingResults(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: planSingleServiceNow})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is resolved."})
	client.AddRouted(routeReview, llm.ScriptEntry{Text: reviewIncomplete})
	client.AddRouted(routeReplan, llm.ScriptEntry{Text: replanDecline})
	client.AddRouted(routeSummary, streamingText("INC123 is resolved."))

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123?")))
	require.NoError(t, result.failure)
	assert.Equal(t, "INC123 is resolved.", result.output)
	assert.Equal(t, 1, result.invoked[idOrchestrator])
	assert.Equal(t, 1, result.invoked[idStreamingSummary])
	assert.Equal(t, []string{"INC123 is resolved."}, result.updates[idStreamingSummary])

	// The decline-path summary still sees the collected step results.
	inputs := client.CapturedInputs()
	summaryPrompt := inputs[len(inputs)-1].Messages[1].Content
	assert.Contains(t, summaryPrompt, "Step 1 | Agent: servicenow")
}

func TestDynamic_ClarifyYieldsInterpretations(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: `{"action": "clarify", "reject_reason": "", ` +
		`"clarification_reason": "service name is ambiguous", "plan": [], "plan_reason": ""}`})
	client.AddRouted(routeClarify, llm.ScriptEntry{Text: `{"clarification_request": "Which service do you mean?", ` +
		`"possible_interpretations": ["The payments API", "The payments database"]}`})

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Is it healthy?")))
	require.NoError(t, result.failure)
	require.True(t, result.hasOutput)
	assert.Contains(t, result.output, "Which service do you mean?")
	assert.Contains(t, result.output, "Possible interpretations:\n  - The payments API\n  - The payments database")
	require.Len(t, result.updates[idClarifyExecutor], 1)
	assert.Equal(t, result.output, result.updates[idClarifyExecutor][0])
}

func TestDynamic_RejectYieldsRejectionMessage(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: `{"action": "reject", "reject_reason": "Not an operations question", ` +
		`"clarification_reason": "", "plan": [], "plan_reason": ""}`})

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Tell me a joke")))
	require.NoError(t, result.failure)
	assert.Contains(t, result.output, "Not an operations question")
	assert.Contains(t, result.output, "What I can help with:")
}

func TestDynamic_UnknownAgentKeyFailsSchema(t *testing.T) {
	// Plan schema forbids unknown agent keys, so an invalid plan never
	// parses and the workflow fails with a schema violation.
	client := llm.NewScriptedClient()
	badPlan := `{"action": "plan", "reject_reason": "", "clarification_reason": "", ` +
		`"plan": [{"step": 1, "agent": "nonexistent", "question": "?"}], "plan_reason": ""}`
	for i := 0; i < 3; i++ {
		client.AddRouted(routePlan, llm.ScriptEntry{Text: badPlan})
	}

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status?")))
	require.Error(t, result.failure)
	assert.ErrorIs(t, result.failure, llm.ErrSchemaViolation)
}

func TestDynamic_ReplanLoopHitsIterationLimit(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: planSingleServiceNow})
	for i := 0; i < 5; i++ {
		client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is open."})
		client.AddRouted(routeHealth, llm.ScriptEntry{Text: "payments is degraded."})
		client.AddRouted(routeReview, llm.ScriptEntry{Text: reviewIncomplete})
		client.AddRouted(routeReplan, llm.ScriptEntry{Text: replanAccept})
	}

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123?")))
	require.Error(t, result.failure)
	assert.ErrorIs(t, result.failure, workflow.ErrIterationLimitExceeded)
	assert.False(t, result.hasOutput)
}

func TestDynamic_AgentRunFailureIsCapturedInResults(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddRouted(routePlan, llm.ScriptEntry{Text: planSingleServiceNow})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Error: errors.New("model unavailable")})
	client.AddRouted(routeReview, llm.ScriptEntry{Text: reviewComplete})
	client.AddRouted(routeSummary, streamingText("INC123 could not be looked up."))

	wf, err := NewDynamic(newTestConfig(t, client))
	require.NoError(t, err)

	result := drainRun(t, wf.RunStream(context.Background(), userInput("Status of INC123?")))
	require.NoError(t, result.failure, "a failed task is data for the review loop, not a workflow failure")

	var reviewPrompt string
	for _, input := range client.CapturedInputs() {
		if strings.Contains(input.Messages[0].Content, routeReview) {
			reviewPrompt = input.Messages[1].Content
		}
	}
	assert.Contains(t, reviewPrompt, "Error:")
}

func TestFormatStepResults_Empty(t *testing.T) {
	assert.Equal(t, "(No results)", formatStepResults(nil))
	assert.Equal(t, "(No results)", formatStepResults(map[int][]ExecutionResult{}))
}
