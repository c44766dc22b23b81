package workflows

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/stanley-ops/stanley/pkg/agent"
	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/prompt"
	"github.com/stanley-ops/stanley/pkg/workflow"
)

// Triage workflow executor IDs.
const (
	idStoreQuery   = "store_query"
	idTriageAgent  = "triage_agent"
	idDispatcher   = "dispatcher"
	idRejectQuery  = "reject_query"
	idAggregator   = "aggregator"
	idSummaryAgent = "summary_agent"
	subExecutorSfx = "_executor"
)

// NewTriage builds the triage workflow: classify the latest question, fan
// out tasks to the matching sub-agents in parallel, aggregate their answers
// and stream a final summary.
func NewTriage(cfg Config) (*workflow.Workflow, error) {
	subAgents, err := cfg.subAgents()
	if err != nil {
		return nil, err
	}
	state := &runState{}

	triageAgent := cfg.orchestrationAgent("triage-agent", "triage",
		prompt.TriageInstructions(cfg.Registry),
		triageOutputSchema(cfg.Registry.Keys()))
	summaryAgent := cfg.orchestrationAgent("summary-agent", "summary",
		prompt.SummaryInstructions(), "")

	b := workflow.NewBuilder("triage").
		AddExecutor(&storeQueryExecutor{state: state}).
		AddExecutor(&triageClassifier{agent: triageAgent}).
		AddExecutor(&dispatchExecutor{}).
		AddExecutor(newRejectExecutor(cfg.Registry)).
		AddExecutor(&aggregateExecutor{
			registry: cfg.Registry,
			expected: len(subAgents),
			byAgent:  make(map[string]string),
		}).
		AddExecutor(&summaryExecutor{id: idSummaryAgent, agent: summaryAgent, state: state})

	for _, key := range cfg.Registry.Keys() {
		b.AddExecutor(&filteredAgentExecutor{key: key, agent: subAgents[key]})
	}

	b.SetStart(idStoreQuery).
		AddEdge(idStoreQuery, idTriageAgent).
		AddSelectionGroup(idTriageAgent, []string{idDispatcher, idRejectQuery}, selectDispatchOrReject).
		AddEdge(idAggregator, idSummaryAgent)
	for _, key := range cfg.Registry.Keys() {
		b.AddEdge(idDispatcher, key+subExecutorSfx)
		b.AddEdge(key+subExecutorSfx, idAggregator)
	}
	if cfg.MaxIterations > 0 {
		b.WithMaxIterations(cfg.MaxIterations)
	}
	return b.Build()
}

// runState is the per-run shared state both workflows use for the pieces
// executors need outside their own envelopes.
type runState struct {
	mu            sync.Mutex
	originalQuery string
	results       map[int][]ExecutionResult
}

func (s *runState) setQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.originalQuery = q
}

func (s *runState) query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.originalQuery
}

func (s *runState) setResults(r map[int][]ExecutionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = r
}

func (s *runState) executionResults() map[int][]ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// storeQueryExecutor records the latest user query and forwards the input.
type storeQueryExecutor struct {
	state *runState
}

func (e *storeQueryExecutor) ID() string { return idStoreQuery }

func (e *storeQueryExecutor) Handle(_ context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	input, ok := env.Data.(Input)
	if !ok {
		return fmt.Errorf("store_query: unexpected input %T", env.Data)
	}
	if len(input.Messages) == 0 {
		return fmt.Errorf("store_query: empty conversation")
	}
	e.state.setQuery(input.LatestQuery())
	rc.Send(input)
	return nil
}

// triageClassifier runs the triage agent over the conversation and emits
// its structured routing decision.
type triageClassifier struct {
	agent *agent.Agent
}

func (e *triageClassifier) ID() string { return idTriageAgent }

func (e *triageClassifier) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	input, ok := env.Data.(Input)
	if !ok {
		return fmt.Errorf("triage_agent: unexpected input %T", env.Data)
	}
	var out TriageOutput
	if _, err := e.agent.RunStructured(ctx, input.Messages, &out); err != nil {
		return fmt.Errorf("triage failed: %w", err)
	}
	rc.Send(out)
	return nil
}

// selectDispatchOrReject routes the triage decision. Target order is
// [dispatcher, reject_query]. An accepted decision with no tasks is treated
// as a rejection so the user always gets an answer.
func selectDispatchOrReject(output any, targets []string) []string {
	dispatchID, rejectID := targets[0], targets[1]
	out, ok := output.(TriageOutput)
	if !ok || out.ShouldReject || len(out.Tasks) == 0 {
		return []string{rejectID}
	}
	return []string{dispatchID}
}

// dispatchExecutor fans the accepted task list out to every sub-agent
// executor; each one filters for its own tasks.
type dispatchExecutor struct{}

func (e *dispatchExecutor) ID() string { return idDispatcher }

func (e *dispatchExecutor) Handle(_ context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	out, ok := env.Data.(TriageOutput)
	if !ok {
		return fmt.Errorf("dispatcher: unexpected input %T", env.Data)
	}
	rc.Send(out.Tasks)
	return nil
}

// filteredAgentExecutor runs one sub-agent over the tasks addressed to it.
// It always answers, with empty text when no task matches, so the
// aggregator's fan-in count stays fixed at the number of sub-agents.
type filteredAgentExecutor struct {
	key   string
	agent *agent.Agent
}

func (e *filteredAgentExecutor) ID() string { return e.key + subExecutorSfx }

func (e *filteredAgentExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	tasks, ok := env.Data.([]TriageTask)
	if !ok {
		return fmt.Errorf("%s: unexpected input %T", e.ID(), env.Data)
	}
	var questions []string
	for _, task := range tasks {
		if task.Agent == e.key {
			questions = append(questions, task.Question)
		}
	}
	if len(questions) == 0 {
		rc.Send(agentResponse{Agent: e.key})
		return nil
	}

	combined := questions[0]
	if len(questions) > 1 {
		bullets := make([]string, len(questions))
		for i, q := range questions {
			bullets[i] = "- " + q
		}
		combined = strings.Join(bullets, "\n")
	}

	resp, err := e.agent.Run(ctx, []llm.Message{{Role: llm.RoleUser, Content: combined}})
	if err != nil {
		return fmt.Errorf("%s: %w", e.ID(), err)
	}
	rc.Send(agentResponse{Agent: e.key, Text: resp.Text})
	return nil
}

// aggregateExecutor collects one response per sub-agent and emits the
// consolidated sections, ordered by registry order, once all have arrived.
type aggregateExecutor struct {
	registry *config.SubAgentRegistry
	expected int
	byAgent  map[string]string
	received int
}

func (e *aggregateExecutor) ID() string { return idAggregator }

func (e *aggregateExecutor) Handle(_ context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	resp, ok := env.Data.(agentResponse)
	if !ok {
		return fmt.Errorf("aggregator: unexpected input %T", env.Data)
	}
	e.byAgent[resp.Agent] = resp.Text
	e.received++
	if e.received < e.expected {
		return nil
	}

	var sections []string
	for _, entry := range e.registry.Entries() {
		if text := e.byAgent[entry.Key]; text != "" {
			sections = append(sections, fmt.Sprintf("## %s\n%s", entry.Name, text))
		}
	}
	rc.Send(strings.Join(sections, "\n\n---\n\n"))
	return nil
}

// rejectExecutor yields the rejection message as a single update and the
// final output, keeping the downstream path uniform with streaming answers.
type rejectExecutor struct {
	registry *config.SubAgentRegistry
}

func newRejectExecutor(registry *config.SubAgentRegistry) *rejectExecutor {
	return &rejectExecutor{registry: registry}
}

func (e *rejectExecutor) ID() string { return idRejectQuery }

func (e *rejectExecutor) OutputResponse() bool { return true }

func (e *rejectExecutor) YieldsOutput() {}

func (e *rejectExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	var reason string
	switch out := env.Data.(type) {
	case TriageOutput:
		reason = out.RejectReason
	case TriagePlanOutput:
		reason = out.RejectReason
	default:
		return fmt.Errorf("reject_query: unexpected input %T", env.Data)
	}
	message := prompt.RejectionMessage(reason, e.registry)
	rc.Update(ctx, message)
	rc.Yield(message)
	return nil
}

// summaryExecutor streams the final answer over the collected data and
// yields the concatenated text as the workflow output.
type summaryExecutor struct {
	id    string
	agent *agent.Agent
	state *runState
}

func (e *summaryExecutor) ID() string { return e.id }

func (e *summaryExecutor) OutputResponse() bool { return true }

func (e *summaryExecutor) YieldsOutput() {}

func (e *summaryExecutor) Handle(ctx context.Context, rc *workflow.RunContext, env workflow.Envelope) error {
	data, ok := env.Data.(string)
	if !ok {
		return fmt.Errorf("%s: unexpected input %T", e.id, env.Data)
	}
	if data == "" {
		data = noResultsPlaceholder
	}
	text, err := streamSummary(ctx, rc, e.agent, e.state.query(), data)
	if err != nil {
		return err
	}
	rc.Yield(text)
	return nil
}

// streamSummary runs the summary agent in streaming mode, forwarding each
// delta as a run update, and returns the concatenated text. The stream's
// terminal usage element is the success marker; a stream that closes
// without it failed.
func streamSummary(ctx context.Context, rc *workflow.RunContext, ag *agent.Agent, query, data string) (string, error) {
	updates, err := ag.RunStream(ctx, []llm.Message{{
		Role:    llm.RoleUser,
		Content: prompt.SummaryPrompt(query, data),
	}})
	if err != nil {
		return "", err
	}

	var (
		text     strings.Builder
		finished bool
	)
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				// A cancelled run closes the stream without the usage
				// marker; report the cancellation, not a broken stream.
				if err := ctx.Err(); err != nil {
					return "", err
				}
				if !finished {
					return "", fmt.Errorf("summary stream terminated early")
				}
				return text.String(), nil
			}
			if update.DeltaText != "" {
				text.WriteString(update.DeltaText)
				rc.Update(ctx, update.DeltaText)
			}
			if update.Usage != nil {
				finished = true
			}
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}
