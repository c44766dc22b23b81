// Package agent implements the LLM-backed agent runtime: buffered and
// streaming runs, the tool-call loop, and structured-output runs. Progress
// events flow through the observability middleware to the ambient bus.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/middleware"
	"github.com/stanley-ops/stanley/pkg/models"
	"github.com/stanley-ops/stanley/pkg/tools"
)

// ErrToolLoopExhausted is returned when an agent hits its tool-call budget
// without the model producing a final text answer.
var ErrToolLoopExhausted = errors.New("tool call budget exhausted")

// DefaultToolCallBudget caps tool calls per agent run.
const DefaultToolCallBudget = 8

// Config parameterizes an Agent.
type Config struct {
	Name         string
	Instructions string
	Model        string // resolved model name
	Client       llm.Client
	Executor     tools.Executor // nil = no tools
	Obs          *middleware.Observability

	// ToolCallBudget caps tool calls per run (DefaultToolCallBudget if 0).
	ToolCallBudget int

	// LLMTimeout bounds each individual model call (0 = no extra bound).
	LLMTimeout time.Duration

	// ResponseSchema constrains structured runs to an explicit JSON schema.
	// When empty, RunStructured derives the schema from the output type.
	ResponseSchema string

	// IncludeOutputInEvents carries the agent's output on agent_finished
	// events. Set for orchestration agents whose decisions the UI renders.
	IncludeOutputInEvents bool
}

// Agent is one configured LLM agent.
type Agent struct {
	cfg    Config
	logger *slog.Logger
}

// Response is a completed agent run.
type Response struct {
	Text  string
	Usage models.Usage
}

// Update is one element of a streaming run. Exactly one field is set; the
// final element carries Usage.
type Update struct {
	DeltaText string
	Usage     *models.Usage
}

// New creates an agent. Obs must not be nil; pass a zero-value Observability
// to run without an event bus.
func New(cfg Config) *Agent {
	if cfg.ToolCallBudget <= 0 {
		cfg.ToolCallBudget = DefaultToolCallBudget
	}
	if cfg.Obs == nil {
		cfg.Obs = &middleware.Observability{}
	}
	if cfg.Executor != nil {
		cfg.Executor = cfg.Obs.WrapExecutor(cfg.Executor, cfg.Name)
	}
	return &Agent{
		cfg:    cfg,
		logger: slog.Default().With("agent", cfg.Name),
	}
}

// Name returns the agent's name as it appears in events.
func (a *Agent) Name() string { return a.cfg.Name }

// Run performs a buffered run: the tool-call loop executes until the model
// produces a final text or the budget is exhausted.
func (a *Agent) Run(ctx context.Context, input []llm.Message) (*Response, error) {
	a.cfg.Obs.AgentInvoked(ctx, a.cfg.Name)
	start := time.Now()

	resp, err := a.runLoop(ctx, input, nil)
	a.finish(ctx, start, resp, err)
	return resp, err
}

// RunStream performs a streaming run. Text deltas arrive as they are
// produced; tool phases surface through the middleware as function events.
// The returned channel is closed after the final Usage update.
func (a *Agent) RunStream(ctx context.Context, input []llm.Message) (<-chan Update, error) {
	a.cfg.Obs.AgentInvoked(ctx, a.cfg.Name)
	start := time.Now()

	updates := make(chan Update)
	go func() {
		defer close(updates)
		emit := func(delta string) bool {
			select {
			case updates <- Update{DeltaText: delta}:
				return true
			case <-ctx.Done():
				return false
			}
		}
		resp, err := a.runLoop(ctx, input, emit)
		a.finish(ctx, start, resp, err)
		if err != nil {
			a.logger.Error("streaming run failed", "error", err)
			return
		}
		select {
		case updates <- Update{Usage: &resp.Usage}:
		case <-ctx.Done():
		}
	}()
	return updates, nil
}

// RunStructured performs a buffered run constrained to out's JSON schema.
// Tools and structured output are mutually exclusive by construction.
func (a *Agent) RunStructured(ctx context.Context, input []llm.Message, out any) (*Response, error) {
	a.cfg.Obs.AgentInvoked(ctx, a.cfg.Name)
	start := time.Now()

	var resp *llm.Response
	err := llm.WithRetry(ctx, func() error {
		callCtx, cancel := a.callContext(ctx)
		defer cancel()
		var callErr error
		resp, callErr = llm.CompleteStructured(callCtx, a.cfg.Client, &llm.GenerateInput{
			Model:              a.cfg.Model,
			Messages:           a.conversation(input),
			ResponseSchema:     a.cfg.ResponseSchema,
			ResponseSchemaName: a.cfg.Name,
		}, out)
		return callErr
	})
	if err != nil {
		a.finish(ctx, start, nil, err)
		return nil, err
	}
	result := &Response{Text: resp.Text, Usage: resp.Usage}
	a.finish(ctx, start, result, nil)
	return result, nil
}

// CollectStream reconstructs a buffered Response from a completed stream by
// concatenating deltas and taking the terminal usage.
func CollectStream(ctx context.Context, updates <-chan Update) (*Response, error) {
	var resp Response
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return &resp, nil
			}
			resp.Text += update.DeltaText
			if update.Usage != nil {
				resp.Usage = *update.Usage
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// runLoop is the shared tool-call loop. emit, when non-nil, receives text
// deltas as they stream; it returns false when the consumer is gone.
func (a *Agent) runLoop(ctx context.Context, input []llm.Message, emit func(string) bool) (*Response, error) {
	conversation := a.conversation(input)

	var toolDefs []llm.ToolDefinition
	if a.cfg.Executor != nil {
		defs, err := a.cfg.Executor.ListTools(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tools: %w", err)
		}
		toolDefs = defs
	}

	var (
		usage     models.Usage
		callsUsed int
	)
	for {
		var resp *llm.Response
		err := llm.WithRetry(ctx, func() error {
			callCtx, cancel := a.callContext(ctx)
			defer cancel()

			chunks, genErr := a.cfg.Client.Generate(callCtx, &llm.GenerateInput{
				Model:    a.cfg.Model,
				Messages: conversation,
				Tools:    toolDefs,
			})
			if genErr != nil {
				return genErr
			}
			if emit == nil {
				resp, genErr = llm.Collect(callCtx, chunks)
				return genErr
			}
			resp, genErr = collectStreaming(callCtx, chunks, emit)
			return genErr
		})
		if err != nil {
			return nil, err
		}
		usage.Add(resp.Usage)

		if len(resp.ToolCalls) == 0 {
			return &Response{Text: resp.Text, Usage: usage}, nil
		}

		if callsUsed+len(resp.ToolCalls) > a.cfg.ToolCallBudget {
			return nil, fmt.Errorf("%w: %d calls", ErrToolLoopExhausted, a.cfg.ToolCallBudget)
		}

		conversation = append(conversation, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Text,
			ToolCalls: resp.ToolCalls,
		})
		for _, call := range resp.ToolCalls {
			callsUsed++
			result, err := a.cfg.Executor.Execute(ctx, call)
			if err != nil {
				return nil, fmt.Errorf("tool %s failed: %w", call.Name, err)
			}
			conversation = append(conversation, llm.Message{
				Role:       llm.RoleTool,
				Content:    result.Content,
				ToolCallID: result.CallID,
				ToolName:   result.Name,
			})
		}
	}
}

func (a *Agent) conversation(input []llm.Message) []llm.Message {
	msgs := make([]llm.Message, 0, len(input)+1)
	if a.cfg.Instructions != "" {
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: a.cfg.Instructions})
	}
	return append(msgs, input...)
}

func (a *Agent) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.LLMTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.LLMTimeout)
}

func (a *Agent) finish(ctx context.Context, start time.Time, resp *Response, err error) {
	var (
		output string
		usage  *models.Usage
	)
	if resp != nil {
		output = resp.Text
		usage = &resp.Usage
	}
	elapsedMS := time.Since(start).Milliseconds()
	a.cfg.Obs.AgentFinished(ctx, middleware.AgentRun{
		AgentName:       a.cfg.Name,
		Model:           a.cfg.Model,
		ExecutionTimeMS: elapsedMS,
		Output:          output,
		Usage:           usage,
		IncludeOutput:   a.cfg.IncludeOutputInEvents && err == nil,
	})
	a.logger.Info("agent run finished",
		"model", a.cfg.Model,
		"execution_time_ms", elapsedMS,
		"failed", err != nil)
}

// collectStreaming mirrors llm.Collect but forwards text deltas to emit.
func collectStreaming(ctx context.Context, chunks <-chan llm.Chunk, emit func(string) bool) (*llm.Response, error) {
	var resp llm.Response
	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				return &resp, nil
			}
			switch c := chunk.(type) {
			case *llm.TextChunk:
				resp.Text += c.Content
				if !emit(c.Content) {
					return nil, ctx.Err()
				}
			case *llm.ToolCallChunk:
				resp.ToolCalls = append(resp.ToolCalls, llm.ToolCall{
					ID: c.CallID, Name: c.Name, Arguments: c.Arguments,
				})
			case *llm.UsageChunk:
				resp.Usage = models.Usage{
					InputTokens:  c.InputTokens,
					OutputTokens: c.OutputTokens,
					TotalTokens:  c.TotalTokens,
				}
			case *llm.ErrorChunk:
				if c.Retryable {
					return nil, &llm.CallError{Class: llm.ErrTransient, Message: c.Message}
				}
				return nil, &llm.CallError{Class: llm.ErrPermanent, Message: c.Message}
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
