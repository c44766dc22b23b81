package workflows

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/stanley-ops/stanley/pkg/agent"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/prompt"
	"github.com/stanley-ops/stanley/pkg/workflow"
)

// Dynamic workflow executor IDs.
const (
	idTriage           = "triage"
	idClarifyExecutor  = "clarify_executor"
	idOrchestrator     = "orchestrator"
	idReviewExecutor   = "review_executor"
	idStreamingSummary = "streaming_summary"
)

// NewDynamic builds the plan/review workflow: the plan agent produces a
// step-based execution plan, the orchestrator runs it, and the review agent
// either accepts the results (streaming the final summary) or sends
// feedback around the replan loop, bounded by the iteration limit.
func NewDynamic(cfg Config) (*workflow.Workflow, error) {
	subAgents, err := cfg.subAgents()
	if err != nil {
		return nil, err
	}
	state := &runState{}
	keys := cfg.Registry.Keys()

	planAgent := cfg.orchestrationAgent("plan-agent", "plan",
		prompt.PlanInstructions(cfg.Registry), triagePlanOutputSchema(keys))
	replanAgent := cfg.orchestrationAgent("replan-agent", "replan",
		prompt.ReplanInstructions(cfg.Registry), triageReplanOutputSchema(keys))
	reviewAgent := cfg.orchestrationAgent("review-agent", "review",
		prompt.ReviewInstructions(cfg.Registry), "")
	clarifyAgent := cfg.orchestrationAgent("clarify-agent", "clarify",
		prompt.ClarifyInstructions(cfg.Registry), "")
	summaryAgent := cfg.orchestrationAgent("summary-agent", "summary",
		prompt.SummaryInstructions(), "")

	b := workflow.NewBuilder("dynamic").
		AddExecutor(&planStoreExecutor{state: state}).
		AddExecutor(&triageExecutor{plan: planAgent, replan: replanAgent, state: state}).
		AddExecutor(&clarifyExecutor{agent: clarifyAgent, state: state}).
		AddExecutor(newRejectExecutor(cfg.Registry)).
		AddExecutor(&orchestratorExecutor{agents: subAgents, state: state}).
		AddExecutor(&reviewExecutor{review: reviewAgent, summary: summaryAgent, state: state}).
		AddExecutor(&streamingSummaryExecutor{agent: summaryAgent, state: state})

	b.SetStart(idStoreQuery).
		AddEdge(idStoreQuery, idTriage).
		AddSelectionGroup(idTriage,
			[]string{idClarifyExecutor, idRejectQuery, idOrchestrator, idStreamingSummary},
			selectTriagePath).
		AddEdge(idOrchestrator, idReviewExecutor).
		AddLoopEdge(idReviewExecutor, idTriage)
	if cfg.MaxIterations > 0 {
		b.WithMaxIterations(cfg.MaxIterations)
	}
	return b.Build()
}

// planStoreExecutor records the latest user query and emits the initial
// plan request.
type planStoreExecutor struct {
	state *runState
}

func (e *planStoreExecutor) ID() string { return idStoreQuery }

func (e *planStoreExecutor) Handle(_ context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	input, ok := env.Data.(Input)
	if !ok {
		return fmt.Errorf("store_query: unexpected input %T", env.Data)
	}
	if len(input.Messages) == 0 {
		return fmt.Errorf("store_query: empty conversation")
	}
	e.state.setQuery(input.LatestQuery())
	rc.Send(PlanRequest{Messages: input.Messages})
	return nil
}

// triageExecutor is polymorphic: fresh input goes to the plan agent, review
// feedback to the replan agent.
type triageExecutor struct {
	plan   *agent.Agent
	replan *agent.Agent
	state  *runState
}

func (e *triageExecutor) ID() string { return idTriage }

func (e *triageExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	switch req := env.Data.(type) {
	case PlanRequest:
		var out TriagePlanOutput
		input := []llm.Message{{Role: llm.RoleUser, Content: prompt.PlanPrompt(req.Messages)}}
		if _, err := e.plan.RunStructured(ctx, input, &out); err != nil {
			return fmt.Errorf("plan failed: %w", err)
		}
		rc.Send(out)
		return nil
	case ReplanRequest:
		var out TriageReplanOutput
		input := []llm.Message{{Role: llm.RoleUser, Content: prompt.ReplanPrompt(
			req.OriginalQuery,
			formatStepResults(req.PreviousResults),
			req.MissingAspects,
			req.SuggestedApproach,
		)}}
		if _, err := e.replan.RunStructured(ctx, input, &out); err != nil {
			return fmt.Errorf("replan failed: %w", err)
		}
		rc.Send(out)
		return nil
	default:
		return fmt.Errorf("triage: unexpected input %T", env.Data)
	}
}

// selectTriagePath routes both triage output variants. Target order is
// [clarify_executor, reject_query, orchestrator, streaming_summary].
func selectTriagePath(output any, targets []string) []string {
	clarifyID, rejectID, orchestratorID, streamingID := targets[0], targets[1], targets[2], targets[3]
	switch out := output.(type) {
	case TriagePlanOutput:
		switch {
		case out.Action == ActionClarify:
			return []string{clarifyID}
		case out.Action == ActionReject, len(out.Plan) == 0:
			return []string{rejectID}
		default:
			return []string{orchestratorID}
		}
	case TriageReplanOutput:
		if out.AcceptReview && len(out.NewPlan) > 0 {
			return []string{orchestratorID}
		}
		return []string{streamingID}
	default:
		return []string{rejectID}
	}
}

// clarifyExecutor turns an ambiguous-query verdict into a polite
// clarification request with possible interpretations.
type clarifyExecutor struct {
	agent *agent.Agent
	state *runState
}

func (e *clarifyExecutor) ID() string { return idClarifyExecutor }

func (e *clarifyExecutor) OutputResponse() bool { return true }

func (e *clarifyExecutor) YieldsOutput() {}

func (e *clarifyExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	out, ok := env.Data.(TriagePlanOutput)
	if !ok {
		return fmt.Errorf("clarify_executor: unexpected input %T", env.Data)
	}
	reason := out.ClarificationReason
	if reason == "" {
		reason = out.RejectReason
	}

	var clarify ClarifyOutput
	input := []llm.Message{{Role: llm.RoleUser, Content: prompt.ClarifyPrompt(e.state.query(), reason)}}
	if _, err := e.agent.RunStructured(ctx, input, &clarify); err != nil {
		return fmt.Errorf("clarify failed: %w", err)
	}

	var b strings.Builder
	b.WriteString(clarify.ClarificationRequest)
	if len(clarify.PossibleInterpretations) > 0 {
		b.WriteString("\n\nPossible interpretations:")
		for _, interp := range clarify.PossibleInterpretations {
			b.WriteString("\n  - ")
			b.WriteString(interp)
		}
	}
	text := b.String()
	rc.Update(ctx, text)
	rc.Yield(text)
	return nil
}

// orchestratorExecutor runs an execution plan: tasks within a step in
// parallel, steps in sequence, each step seeing the previous step's
// results. Replan plans are merged after the steps already executed.
type orchestratorExecutor struct {
	agents map[string]*agent.Agent
	state  *runState
}

func (e *orchestratorExecutor) ID() string { return idOrchestrator }

func (e *orchestratorExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	switch out := env.Data.(type) {
	case TriagePlanOutput:
		results, err := e.runPlan(ctx, out.Plan, nil)
		if err != nil {
			return err
		}
		e.state.setResults(results)
		rc.Send(ReviewRequest{ExecutionResults: results})
		return nil
	case TriageReplanOutput:
		previous := e.state.executionResults()
		fresh, err := e.runPlan(ctx, out.NewPlan, previous)
		if err != nil {
			return err
		}
		merged := mergeResults(previous, fresh)
		e.state.setResults(merged)
		rc.Send(ReviewRequest{ExecutionResults: merged})
		return nil
	default:
		return fmt.Errorf("orchestrator: unexpected input %T", env.Data)
	}
}

func (e *orchestratorExecutor) runPlan(ctx context.Context, plan []PlanTask, existing map[int][]ExecutionResult) (map[int][]ExecutionResult, error) {
	grouped := make(map[int][]PlanTask)
	for _, task := range plan {
		step := task.Step
		if step < 1 {
			step = 1
		}
		grouped[step] = append(grouped[step], task)
	}
	steps := make([]int, 0, len(grouped))
	for step := range grouped {
		steps = append(steps, step)
	}
	sort.Ints(steps)

	results := make(map[int][]ExecutionResult, len(steps))
	for _, step := range steps {
		prev := results[step-1]
		if prev == nil {
			prev = existing[step-1]
		}
		stepResults, err := e.runStep(ctx, grouped[step], stepContext(prev))
		if err != nil {
			return nil, err
		}
		results[step] = stepResults
	}
	return results, nil
}

// runStep executes one step's tasks in parallel, preserving task order in
// the result slice.
func (e *orchestratorExecutor) runStep(ctx context.Context, tasks []PlanTask, prevContext string) ([]ExecutionResult, error) {
	results := make([]ExecutionResult, len(tasks))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		group.Go(func() error {
			results[i] = e.runTask(groupCtx, task, prevContext)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runTask answers one task. A missing agent or a failed run becomes an
// error-text result rather than a workflow failure: the review loop can
// decide whether the gap matters.
func (e *orchestratorExecutor) runTask(ctx context.Context, task PlanTask, prevContext string) ExecutionResult {
	result := ExecutionResult{Agent: task.Agent, Question: task.Question}
	ag, ok := e.agents[task.Agent]
	if !ok {
		result.Response = fmt.Sprintf("Error: Agent %q not found", task.Agent)
		return result
	}

	message := task.Question
	if prevContext != "" {
		message = prevContext + "\n\nYour task: " + task.Question
	}
	resp, err := ag.Run(ctx, []llm.Message{{Role: llm.RoleUser, Content: message}})
	if err != nil {
		result.Response = fmt.Sprintf("Error: %v", err)
		return result
	}
	result.Response = resp.Text
	return result
}

func stepContext(prev []ExecutionResult) string {
	if len(prev) == 0 {
		return ""
	}
	parts := make([]string, len(prev))
	for i, r := range prev {
		parts[i] = fmt.Sprintf("---\nAgent: %s\nQuestion: %s\nResponse: %s\n---", r.Agent, r.Question, r.Response)
	}
	return "Previous step results:\n" + strings.Join(parts, "\n")
}

// mergeResults appends a retry run's results after the highest step already
// executed so the combined map reads as one continuous execution.
func mergeResults(previous, fresh map[int][]ExecutionResult) map[int][]ExecutionResult {
	merged := make(map[int][]ExecutionResult, len(previous)+len(fresh))
	maxStep := 0
	for step, stepResults := range previous {
		merged[step] = stepResults
		if step > maxStep {
			maxStep = step
		}
	}
	for step, stepResults := range fresh {
		merged[maxStep+step] = stepResults
	}
	return merged
}

// reviewExecutor judges completeness with the review agent and, when
// satisfied, streams the final summary. Incomplete results go back around
// the loop edge as a replan request.
type reviewExecutor struct {
	review  *agent.Agent
	summary *agent.Agent
	state   *runState
}

func (e *reviewExecutor) ID() string { return idReviewExecutor }

func (e *reviewExecutor) OutputResponse() bool { return true }

func (e *reviewExecutor) YieldsOutput() {}

func (e *reviewExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	req, ok := env.Data.(ReviewRequest)
	if !ok {
		return fmt.Errorf("review_executor: unexpected input %T", env.Data)
	}
	query := e.state.query()
	resultsText := formatStepResults(req.ExecutionResults)

	var out ReviewOutput
	input := []llm.Message{{Role: llm.RoleUser, Content: prompt.ReviewPrompt(query, resultsText)}}
	if _, err := e.review.RunStructured(ctx, input, &out); err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if out.IsComplete {
		text, err := streamSummary(ctx, rc, e.summary, query, resultsText)
		if err != nil {
			return err
		}
		rc.Yield(text)
		return nil
	}

	rc.Send(ReplanRequest{
		OriginalQuery:     query,
		PreviousResults:   req.ExecutionResults,
		MissingAspects:    out.MissingAspects,
		SuggestedApproach: out.SuggestedApproach,
	})
	return nil
}

// streamingSummaryExecutor is the replan-decline path: stream a summary of
// whatever was already collected.
type streamingSummaryExecutor struct {
	agent *agent.Agent
	state *runState
}

func (e *streamingSummaryExecutor) ID() string { return idStreamingSummary }

func (e *streamingSummaryExecutor) OutputResponse() bool { return true }

func (e *streamingSummaryExecutor) YieldsOutput() {}

func (e *streamingSummaryExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	if _, ok := env.Data.(TriageReplanOutput); !ok {
		return fmt.Errorf("streaming_summary: unexpected input %T", env.Data)
	}
	text, err := streamSummary(ctx, rc, e.agent, e.state.query(), formatStepResults(e.state.executionResults()))
	if err != nil {
		return err
	}
	rc.Yield(text)
	return nil
}
