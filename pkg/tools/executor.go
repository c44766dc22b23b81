// Package tools provides the tool registry, the bounded execution pool and
// the builtin ops tools that sub-agents call.
package tools

import (
	"context"
	"fmt"

	"github.com/stanley-ops/stanley/pkg/llm"
)

// Executor abstracts tool execution for agent tool-call loops.
type Executor interface {
	// Execute runs a single tool call and returns the result.
	// The result content is always a string (tool output or error message).
	Execute(ctx context.Context, call llm.ToolCall) (*Result, error)

	// ListTools returns the tool definitions available to this executor.
	ListTools(ctx context.Context) ([]llm.ToolDefinition, error)

	// Close releases resources.
	Close() error
}

// Result is the output of one tool execution.
type Result struct {
	CallID  string // matches llm.ToolCall.ID
	Name    string
	Content string
	IsError bool
}

// StubExecutor returns canned responses for testing.
type StubExecutor struct {
	tools []llm.ToolDefinition
}

// NewStubExecutor creates a stub executor with the given tool definitions.
func NewStubExecutor(tools []llm.ToolDefinition) *StubExecutor {
	return &StubExecutor{tools: tools}
}

func (s *StubExecutor) Execute(_ context.Context, call llm.ToolCall) (*Result, error) {
	return &Result{
		CallID:  call.ID,
		Name:    call.Name,
		Content: fmt.Sprintf("[stub] Tool %q called with args: %s", call.Name, call.Arguments),
		IsError: false,
	}, nil
}

func (s *StubExecutor) ListTools(_ context.Context) ([]llm.ToolDefinition, error) {
	return s.tools, nil
}

func (s *StubExecutor) Close() error { return nil }
