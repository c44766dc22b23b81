// Package workflows builds the two concrete workflows the chat service
// runs on top of the workflow engine: Triage (classify, fan out, aggregate,
// summarize) and Dynamic (plan, execute steps, review, bounded replan loop).
//
// Workflows are constructed per request: executors hold per-run state such
// as the original query and accumulated execution results.
package workflows

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/stanley-ops/stanley/pkg/llm"
)

// Input is the workflow's initial envelope payload: the conversation as the
// model should see it, memory context already folded in by the caller.
type Input struct {
	Messages []llm.Message
}

// LatestQuery returns the text of the most recent user message.
func (in Input) LatestQuery() string {
	for i := len(in.Messages) - 1; i >= 0; i-- {
		if in.Messages[i].Role == llm.RoleUser {
			return in.Messages[i].Content
		}
	}
	return ""
}

// TriageTask is one routed question in the triage workflow.
type TriageTask struct {
	Agent    string `json:"agent"`
	Question string `json:"question"`
}

// TriageOutput is the triage agent's routing decision.
type TriageOutput struct {
	ShouldReject bool         `json:"should_reject"`
	RejectReason string       `json:"reject_reason"`
	Tasks        []TriageTask `json:"tasks"`
}

// PlanTask is one step-tagged question in a dynamic plan. Tasks sharing a
// step number run in parallel; steps run sequentially.
type PlanTask struct {
	Step     int    `json:"step"`
	Agent    string `json:"agent"`
	Question string `json:"question"`
}

// PlanAction values for TriagePlanOutput.
const (
	ActionPlan    = "plan"
	ActionClarify = "clarify"
	ActionReject  = "reject"
)

// TriagePlanOutput is the plan agent's decision on fresh user input.
type TriagePlanOutput struct {
	Action              string     `json:"action"`
	RejectReason        string     `json:"reject_reason"`
	ClarificationReason string     `json:"clarification_reason"`
	Plan                []PlanTask `json:"plan"`
	PlanReason          string     `json:"plan_reason"`
}

// TriageReplanOutput is the replan agent's verdict on review feedback.
type TriageReplanOutput struct {
	AcceptReview    bool       `json:"accept_review"`
	NewPlan         []PlanTask `json:"new_plan"`
	RejectionReason string     `json:"rejection_reason"`
}

// ReviewOutput is the review agent's completeness assessment.
type ReviewOutput struct {
	IsComplete        bool     `json:"is_complete"`
	MissingAspects    []string `json:"missing_aspects"`
	SuggestedApproach string   `json:"suggested_approach"`
	Confidence        float64  `json:"confidence"`
}

// ClarifyOutput is the clarify agent's structured clarification request.
type ClarifyOutput struct {
	ClarificationRequest    string   `json:"clarification_request"`
	PossibleInterpretations []string `json:"possible_interpretations"`
}

// ExecutionResult is one sub-agent answer collected by the orchestrator.
type ExecutionResult struct {
	Agent    string
	Question string
	Response string
}

// Internal envelope payloads.

// PlanRequest asks the triage executor for an initial plan.
type PlanRequest struct {
	Messages []llm.Message
}

// ReplanRequest carries review feedback back around the loop edge.
type ReplanRequest struct {
	OriginalQuery     string
	PreviousResults   map[int][]ExecutionResult
	MissingAspects    []string
	SuggestedApproach string
}

// ReviewRequest carries aggregated execution results to the review executor.
type ReviewRequest struct {
	ExecutionResults map[int][]ExecutionResult
}

// agentResponse is one sub-agent's answer in the triage fan-in.
type agentResponse struct {
	Agent string // sub-agent key; "" means the agent had no matching task
	Text  string
}

// noResultsPlaceholder stands in when a summary is requested with nothing
// collected, e.g. a replan decline before any plan ran.
const noResultsPlaceholder = "(No results)"

// formatStepResults renders step-grouped execution results for prompts.
func formatStepResults(results map[int][]ExecutionResult) string {
	if len(results) == 0 {
		return noResultsPlaceholder
	}
	steps := make([]int, 0, len(results))
	for step := range results {
		steps = append(steps, step)
	}
	sort.Ints(steps)

	var parts []string
	for _, step := range steps {
		for _, r := range results[step] {
			parts = append(parts, fmt.Sprintf(
				"---\nStep %d | Agent: %s\nQuestion: %s\nResponse:\n%s\n---",
				step, r.Agent, r.Question, r.Response))
		}
	}
	if len(parts) == 0 {
		return noResultsPlaceholder
	}
	return strings.Join(parts, "\n")
}

// Structured-output JSON schemas. Agent keys are baked in as enum values at
// construction time so a plan can never reference an unregistered agent.

func triageOutputSchema(agentKeys []string) string {
	return marshalSchema(objectSchema(map[string]any{
		"should_reject": map[string]any{"type": "boolean"},
		"reject_reason": map[string]any{"type": "string"},
		"tasks": map[string]any{
			"type":  "array",
			"items": taskSchema(agentKeys, false),
		},
	}, "should_reject", "reject_reason", "tasks"))
}

func triagePlanOutputSchema(agentKeys []string) string {
	return marshalSchema(objectSchema(map[string]any{
		"action": map[string]any{
			"type": "string",
			"enum": []string{ActionPlan, ActionClarify, ActionReject},
		},
		"reject_reason":        map[string]any{"type": "string"},
		"clarification_reason": map[string]any{"type": "string"},
		"plan": map[string]any{
			"type":  "array",
			"items": taskSchema(agentKeys, true),
		},
		"plan_reason": map[string]any{"type": "string"},
	}, "action", "reject_reason", "clarification_reason", "plan", "plan_reason"))
}

func triageReplanOutputSchema(agentKeys []string) string {
	return marshalSchema(objectSchema(map[string]any{
		"accept_review": map[string]any{"type": "boolean"},
		"new_plan": map[string]any{
			"type":  "array",
			"items": taskSchema(agentKeys, true),
		},
		"rejection_reason": map[string]any{"type": "string"},
	}, "accept_review", "new_plan", "rejection_reason"))
}

func taskSchema(agentKeys []string, withStep bool) map[string]any {
	props := map[string]any{
		"agent":    map[string]any{"type": "string", "enum": agentKeys},
		"question": map[string]any{"type": "string"},
	}
	required := []string{"agent", "question"}
	if withStep {
		props["step"] = map[string]any{"type": "integer", "minimum": 1}
		required = append([]string{"step"}, required...)
	}
	return objectSchema(props, required...)
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           properties,
		"required":             required,
	}
}

func marshalSchema(schema map[string]any) string {
	b, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("workflows: schema marshal failed: %v", err))
	}
	return string(b)
}
