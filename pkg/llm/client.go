// Package llm defines the chat-model client interface and its Azure OpenAI
// implementation. The interface is channel-based: one Generate call yields a
// stream of typed chunks, and buffered responses are collected from the same
// stream.
package llm

import (
	"context"
	"strings"

	"github.com/stanley-ops/stanley/pkg/models"
)

// Client is the interface for calling a chat model.
type Client interface {
	// Generate sends a conversation to the model and returns a stream of
	// chunks. The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// GenerateInput is one model call.
type GenerateInput struct {
	Model    string // resolved model name (registry deployment)
	Messages []Message
	Tools    []ToolDefinition // nil = no tools

	// ResponseSchema, when non-empty, constrains the response to JSON
	// conforming to this JSON Schema. Named for the provider's benefit.
	ResponseSchema     string
	ResponseSchemaName string
}

// Message is one conversation turn sent to the model.
type Message struct {
	Role       string // "system", "user", "assistant", "tool"
	Content    string
	ToolCalls  []ToolCall // for assistant messages
	ToolCallID string     // for tool result messages
	ToolName   string     // for tool result messages
}

// Message role constants.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolDefinition describes a tool available to the model.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// ToolCall is the model's request to call a tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the model's text response.
type TextChunk struct{ Content string }

// ToolCallChunk signals the model wants to call a tool.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this call. Arrives last.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the provider.
type ErrorChunk struct {
	Message   string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }

// Response is a buffered model response collected from a chunk stream.
type Response struct {
	Text      string
	ToolCalls []ToolCall
	Usage     models.Usage
}

// Collect drains a chunk stream into a buffered Response. An ErrorChunk
// aborts collection and maps to ErrTransient or ErrPermanent.
func Collect(ctx context.Context, chunks <-chan Chunk) (*Response, error) {
	var (
		text strings.Builder
		resp Response
	)
	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				resp.Text = text.String()
				return &resp, nil
			}
			switch c := chunk.(type) {
			case *TextChunk:
				text.WriteString(c.Content)
			case *ToolCallChunk:
				resp.ToolCalls = append(resp.ToolCalls, ToolCall{
					ID:        c.CallID,
					Name:      c.Name,
					Arguments: c.Arguments,
				})
			case *UsageChunk:
				resp.Usage = models.Usage{
					InputTokens:  c.InputTokens,
					OutputTokens: c.OutputTokens,
					TotalTokens:  c.TotalTokens,
				}
			case *ErrorChunk:
				return nil, chunkError(c)
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func chunkError(c *ErrorChunk) error {
	if c.Retryable {
		return &CallError{Class: ErrTransient, Message: c.Message}
	}
	return &CallError{Class: ErrPermanent, Message: c.Message}
}

// CallError carries a failure class plus the provider message.
type CallError struct {
	Class   error // ErrTransient or ErrPermanent
	Message string
}

func (e *CallError) Error() string { return e.Class.Error() + ": " + e.Message }

func (e *CallError) Unwrap() error { return e.Class }

// Complete performs a buffered call: Generate plus Collect.
func Complete(ctx context.Context, client Client, input *GenerateInput) (*Response, error) {
	chunks, err := client.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	return Collect(ctx, chunks)
}
