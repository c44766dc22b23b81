package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/stanley-ops/stanley/pkg/llm"
)

// Handler executes one tool call. args is the raw JSON arguments object;
// the returned string is handed back to the model verbatim.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Tool is one registered tool.
type Tool struct {
	Name         string
	Description  string
	ParamsSchema string // JSON Schema for the arguments object
	Handler      Handler
}

// Registry holds all tools known to the process, keyed by name.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names are a programming error.
func (r *Registry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name]; exists {
		panic(fmt.Sprintf("tool %q registered twice", tool.Name))
	}
	r.tools[tool.Name] = tool
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns llm tool definitions for the named tools, in the
// given order. Unknown names are an error: the sub-agent registry and the
// tool registry must agree.
func (r *Registry) Definitions(names []string) ([]llm.ToolDefinition, error) {
	defs := make([]llm.ToolDefinition, 0, len(names))
	for _, name := range names {
		tool, ok := r.tools[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %q", name)
		}
		defs = append(defs, llm.ToolDefinition{
			Name:             tool.Name,
			Description:      tool.Description,
			ParametersSchema: tool.ParamsSchema,
		})
	}
	return defs, nil
}

// ResultMasker rewrites tool result content before it reaches model
// transcripts or the event stream.
type ResultMasker interface {
	MaskToolResult(content string) string
}

// ScopedExecutor implements Executor for one agent's slice of the registry,
// running calls on the shared bounded pool with a per-call timeout.
type ScopedExecutor struct {
	registry  *Registry
	pool      *Pool
	toolNames []string
	timeout   time.Duration
	masker    ResultMasker
	logger    *slog.Logger
}

// NewScopedExecutor creates an executor exposing only the named tools.
func NewScopedExecutor(registry *Registry, pool *Pool, toolNames []string, timeout time.Duration) *ScopedExecutor {
	return &ScopedExecutor{
		registry:  registry,
		pool:      pool,
		toolNames: toolNames,
		timeout:   timeout,
		logger:    slog.Default().With("component", "tool_executor"),
	}
}

// WithMasker applies a result masker to every successful tool result.
// A nil masker leaves results untouched.
func (e *ScopedExecutor) WithMasker(m ResultMasker) *ScopedExecutor {
	e.masker = m
	return e
}

// ListTools implements Executor.
func (e *ScopedExecutor) ListTools(_ context.Context) ([]llm.ToolDefinition, error) {
	return e.registry.Definitions(e.toolNames)
}

// Execute implements Executor. Tool failures come back as IsError results
// so the model can see them and adjust; only infrastructure failures
// (cancellation, pool shutdown) surface as errors.
func (e *ScopedExecutor) Execute(ctx context.Context, call llm.ToolCall) (*Result, error) {
	if !e.allowed(call.Name) {
		return &Result{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("tool %q is not available to this agent", call.Name),
			IsError: true,
		}, nil
	}
	tool, ok := e.registry.Get(call.Name)
	if !ok {
		return &Result{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("unknown tool: %q", call.Name),
			IsError: true,
		}, nil
	}

	callCtx, cancel := context.WithCancel(ctx)
	if e.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	var (
		content string
		callErr error
	)
	start := time.Now()
	if err := e.pool.Run(callCtx, func(ctx context.Context) {
		content, callErr = tool.Handler(ctx, json.RawMessage(call.Arguments))
	}); err != nil {
		return nil, err
	}
	e.logger.Info("tool executed",
		"tool", call.Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"is_error", callErr != nil)

	if callErr != nil {
		return &Result{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("tool %q failed: %v", call.Name, callErr),
			IsError: true,
		}, nil
	}
	if e.masker != nil {
		content = e.masker.MaskToolResult(content)
	}
	return &Result{
		CallID:  call.ID,
		Name:    call.Name,
		Content: content,
	}, nil
}

// Close implements Executor. The pool is shared and outlives the executor.
func (e *ScopedExecutor) Close() error { return nil }

func (e *ScopedExecutor) allowed(name string) bool {
	for _, n := range e.toolNames {
		if n == name {
			return true
		}
	}
	return false
}
